package response

import (
	"errors"
	"net/http"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/auth"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/company"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/employee"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/expense"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/timeentry"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/user"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/vacation"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")

	// Expense domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrExpenseAlreadyProcessed):
		Conflict(w, "Expense already processed")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrVacationNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrVacationAlreadyProcessed):
		Conflict(w, "Vacation request already processed")
	case errors.Is(err, vacation.ErrVacationNotPending):
		Conflict(w, "Only pending vacation requests can be deleted")

	// Anomaly domain errors
	case errors.Is(err, anomaly.ErrAnomalyNotFound):
		NotFound(w, "Anomaly not found")
	case errors.Is(err, anomaly.ErrInvalidStatus):
		BadRequest(w, "Invalid anomaly status", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered in this company")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
