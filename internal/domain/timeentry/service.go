package timeentry

import (
	"context"
)

// TimeEntryService defines business logic for clock operations
type TimeEntryService interface {
	// Create stamps a clock event for the authenticated employee, runs the
	// synchronous geofence guard and schedules the anomaly pass.
	Create(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)

	// ListTimeEntries retrieves clock events with filters (admin/manager)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) (ListTimeEntryResponse, error)

	// GetMyTimeEntries retrieves clock events for the authenticated employee
	GetMyTimeEntries(ctx context.Context, filter MyTimeEntryFilter) (ListTimeEntryResponse, error)
}
