package expense

import "errors"

// Expense domain errors
var (
	ErrExpenseNotFound         = errors.New("expense not found")
	ErrExpenseAlreadyProcessed = errors.New("expense has already been approved or rejected")
)
