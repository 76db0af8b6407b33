package expense

import (
	"context"
)

// ExpenseService defines business logic for expense operations
type ExpenseService interface {
	// Create files a new reimbursement claim and schedules the anomaly pass
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)

	// ListExpenses retrieves expenses with filters (admin/manager)
	ListExpenses(ctx context.Context, filter ExpenseFilter) (ListExpenseResponse, error)

	// GetMyExpenses retrieves expenses for the authenticated employee
	GetMyExpenses(ctx context.Context, filter ExpenseFilter) (ListExpenseResponse, error)

	// Approve marks a pending expense APPROVED
	Approve(ctx context.Context, id string) (ExpenseResponse, error)

	// Reject marks a pending expense REJECTED with a reason
	Reject(ctx context.Context, req RejectExpenseRequest) (ExpenseResponse, error)
}
