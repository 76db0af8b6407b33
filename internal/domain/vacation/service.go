package vacation

import (
	"context"
)

// VacationService defines business logic for absence request operations
type VacationService interface {
	// Create files a new absence request and schedules the anomaly pass
	Create(ctx context.Context, req CreateVacationRequest) (VacationResponse, error)

	// ListVacations retrieves absence requests with filters (admin/manager)
	ListVacations(ctx context.Context, filter VacationFilter) (ListVacationResponse, error)

	// GetMyVacations retrieves absence requests for the authenticated employee
	GetMyVacations(ctx context.Context, filter VacationFilter) (ListVacationResponse, error)

	// Approve marks a pending request APPROVED
	Approve(ctx context.Context, id string) (VacationResponse, error)

	// Reject marks a pending request REJECTED with a reason
	Reject(ctx context.Context, req RejectVacationRequest) (VacationResponse, error)

	// Delete removes a request while it is still PENDING
	Delete(ctx context.Context, id string) error
}
