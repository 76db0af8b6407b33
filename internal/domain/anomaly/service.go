package anomaly

import (
	"context"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/expense"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/timeentry"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/vacation"
)

// AnomalyService inspects freshly committed entities against historical
// patterns and maintains the deduplicated anomaly record per entity.
//
// The Detect methods are designed to run as detached background tasks:
// callers never block on them and any returned error is only ever logged
// by the dispatching runner, never surfaced to the original request.
type AnomalyService interface {
	// DetectTimeEntry runs the clock-event heuristics for the given entry
	DetectTimeEntry(ctx context.Context, entry timeentry.TimeEntry) error

	// DetectExpense runs the expense heuristics for the given expense
	DetectExpense(ctx context.Context, exp expense.Expense) error

	// DetectVacation runs the absence heuristics for the given request
	DetectVacation(ctx context.Context, vac vacation.Vacation) error

	// ListAnomalies retrieves anomaly events for the management UI
	ListAnomalies(ctx context.Context, filter AnomalyFilter) (ListAnomalyResponse, error)

	// UpdateStatus applies a reviewer decision to an anomaly event
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (AnomalyResponse, error)
}
