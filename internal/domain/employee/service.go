package employee

import (
	"context"
)

// EmployeeService defines business logic for employee records, including
// at-rest PII encryption on the way in and decryption on the way out.
type EmployeeService interface {
	// Create registers a new employee, encrypting SSN/IBAN before storage
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves an employee with decrypted PII
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Update modifies an employee record, re-encrypting changed PII
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
