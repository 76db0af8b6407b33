package alert

import (
	"context"
)

// AlertRepository defines data access methods for location alerts.
type AlertRepository interface {
	// Create stores a new location alert
	Create(ctx context.Context, a LocationAlert) (LocationAlert, error)

	// List retrieves alerts for a company, newest first, with pagination
	List(ctx context.Context, companyID string, page int, limit int) ([]LocationAlert, int64, error)
}
