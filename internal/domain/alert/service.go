package alert

import (
	"context"
)

// AlertService defines read access to location alerts for managers.
type AlertService interface {
	// ListAlerts retrieves alerts for the caller's company, newest first
	ListAlerts(ctx context.Context, page int, limit int) (ListAlertResponse, error)
}
