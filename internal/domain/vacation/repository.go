package vacation

import (
	"context"
	"time"
)

// VacationRepository defines data access methods for absence requests.
type VacationRepository interface {
	// Create stores a new vacation request with status PENDING
	Create(ctx context.Context, vac Vacation) (Vacation, error)

	// GetByID retrieves a vacation request by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Vacation, error)

	// List retrieves vacation requests with filters and pagination
	List(ctx context.Context, filter VacationFilter, companyID string) ([]Vacation, int64, error)

	// UpdateStatus records a manager decision on a pending request
	UpdateStatus(ctx context.Context, id string, companyID string, status string, decidedBy string, reason *string) error

	// Delete removes a vacation request
	Delete(ctx context.Context, id string, companyID string) error

	// CountStartingSince counts the employee's other vacation requests whose
	// start date falls on or after the given time, excluding the given
	// request id. With excludeRejected set, REJECTED requests are ignored.
	// Used by the absence-pattern heuristics.
	CountStartingSince(ctx context.Context, employeeID string, since time.Time, excludeID string, excludeRejected bool) (int64, error)
}
