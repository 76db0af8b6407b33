package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
// SSN and IBAN pass through the repository already encrypted.
type EmployeeRepository interface {
	// Create stores a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// Update overwrites the mutable fields of an employee record
	Update(ctx context.Context, emp Employee) error

	// ExistsByEmail reports whether the email is taken within the company
	ExistsByEmail(ctx context.Context, email string, companyID string) (bool, error)
}
