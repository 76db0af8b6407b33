package employee

import (
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Position *string `json:"position,omitempty"`
	SSN      *string `json:"ssn,omitempty"`
	IBAN     *string `json:"iban,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"full_name,omitempty"`
	Position *string `json:"position,omitempty"`
	SSN      *string `json:"ssn,omitempty"`
	IBAN     *string `json:"iban,omitempty"`
}

// EmployeeResponse exposes decrypted PII; a decryption failure surfaces as
// an absent field, never as an error.
type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	Position  *string `json:"position,omitempty"`
	SSN       *string `json:"ssn,omitempty"`
	IBAN      *string `json:"iban,omitempty"`
	CreatedAt string  `json:"created_at"`
}
