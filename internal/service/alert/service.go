package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/alert"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type AlertServiceImpl struct {
	db *database.DB
	alert.AlertRepository
}

// ListAlerts implements alert.AlertService.
func (s *AlertServiceImpl) ListAlerts(ctx context.Context, page int, limit int) (alert.ListAlertResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return alert.ListAlertResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return alert.ListAlertResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}

	alerts, total, err := s.AlertRepository.List(ctx, companyID, page, limit)
	if err != nil {
		return alert.ListAlertResponse{}, err
	}

	responses := make([]alert.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		responses = append(responses, alert.AlertResponse{
			ID:                  a.ID,
			EmployeeID:          a.EmployeeID,
			EmployeeName:        a.EmployeeName,
			TimeEntryID:         a.TimeEntryID,
			DistanceMeters:      a.DistanceMeters,
			AllowedRadiusMeters: a.AllowedRadiusMeters,
			Severity:            a.Severity,
			Message:             a.Message,
			CreatedAt:           a.CreatedAt.Format(time.RFC3339),
		})
	}

	return alert.ListAlertResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Alerts:     responses,
	}, nil
}

func NewAlertService(db *database.DB, alertRepo alert.AlertRepository) alert.AlertService {
	return &AlertServiceImpl{
		db:              db,
		AlertRepository: alertRepo,
	}
}
