package company

import (
	"context"
)

// CompanyRepository defines the read side this subsystem needs from the
// employing company: geofence configuration resolved through the
// employee→company relation.
type CompanyRepository interface {
	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id string) (Company, error)

	// GetByEmployeeID retrieves the company employing the given employee
	GetByEmployeeID(ctx context.Context, employeeID string) (Company, error)
}
