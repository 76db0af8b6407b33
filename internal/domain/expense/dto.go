package expense

import (
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// EXPENSE DTOs
// ========================================

type CreateExpenseRequest struct {
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"` // YYYY-MM-DD
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`

	// Parsed by Validate
	ParsedDate time.Time `json:"-"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidAmount(r.Amount) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be a positive number",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	} else {
		r.ParsedDate = date
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectExpenseRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseFilter struct {
	EmployeeID *string
	Category   *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortOrder  string
}

type ExpenseResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	Amount          float64 `json:"amount"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	PaymentMethod   string  `json:"payment_method"`
	Status          string  `json:"status"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ListExpenseResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Expenses   []ExpenseResponse `json:"expenses"`
}
