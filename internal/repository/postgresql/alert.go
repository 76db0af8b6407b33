package postgresql

import (
	"context"
	"fmt"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/alert"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type alertRepository struct {
	db *database.DB
}

// Create implements alert.AlertRepository.
func (r *alertRepository) Create(ctx context.Context, a alert.LocationAlert) (alert.LocationAlert, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.New().String()
	}

	query := `
		INSERT INTO location_alerts (id, employee_id, company_id, time_entry_id, distance_meters, allowed_radius_meters, severity, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		a.ID,
		a.EmployeeID,
		a.CompanyID,
		a.TimeEntryID,
		a.DistanceMeters,
		a.AllowedRadiusMeters,
		a.Severity,
		a.Message,
	).Scan(&a.CreatedAt)

	if err != nil {
		return alert.LocationAlert{}, fmt.Errorf("failed to create location alert: %w", err)
	}

	return a, nil
}

// List implements alert.AlertRepository.
func (r *alertRepository) List(ctx context.Context, companyID string, page int, limit int) ([]alert.LocationAlert, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM location_alerts WHERE company_id = $1`
	if err := q.QueryRow(ctx, countQuery, companyID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count location alerts: %w", err)
	}

	if limit == 0 {
		limit = 20
	}
	if page == 0 {
		page = 1
	}

	query := `
		SELECT a.id, a.employee_id, a.company_id, a.time_entry_id, a.distance_meters,
			a.allowed_radius_meters, a.severity, a.message, a.created_at, e.full_name
		FROM location_alerts a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.company_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, companyID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query location alerts: %w", err)
	}
	defer rows.Close()

	var alerts []alert.LocationAlert
	for rows.Next() {
		var a alert.LocationAlert
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.CompanyID, &a.TimeEntryID, &a.DistanceMeters,
			&a.AllowedRadiusMeters, &a.Severity, &a.Message, &a.CreatedAt, &a.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan location alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	return alerts, total, nil
}

func NewAlertRepository(db *database.DB) alert.AlertRepository {
	return &alertRepository{db: db}
}
