package expense

import (
	"context"
	"time"
)

// ExpenseRepository defines data access methods for reimbursement claims.
type ExpenseRepository interface {
	// Create stores a new expense with status PENDING
	Create(ctx context.Context, exp Expense) (Expense, error)

	// GetByID retrieves an expense by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Expense, error)

	// List retrieves expenses with filters and pagination
	List(ctx context.Context, filter ExpenseFilter, companyID string) ([]Expense, int64, error)

	// UpdateStatus records a manager decision on a pending expense
	UpdateStatus(ctx context.Context, id string, companyID string, status string, decidedBy string, reason *string) error

	// ExistsDuplicate reports whether another expense for the same employee
	// with the same amount exists on the same calendar day, excluding the
	// given expense id. Used by the duplicate-expense heuristic.
	ExistsDuplicate(ctx context.Context, employeeID string, amount float64, dayStart time.Time, dayEnd time.Time, excludeID string) (bool, error)

	// CategoryStats returns the count and mean amount of the employee's
	// other expenses in the category since the given time, excluding the
	// given expense id. Used by the amount-outlier heuristic.
	CategoryStats(ctx context.Context, employeeID string, category string, since time.Time, excludeID string) (count int64, mean float64, err error)
}
