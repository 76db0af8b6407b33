package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type anomalyRepository struct {
	db *database.DB
}

// Upsert implements anomaly.AnomalyRepository.
// The (entity_type, entity_id) unique constraint plus ON CONFLICT gives the
// atomic insert-or-overwrite concurrent detector runs rely on; no
// read-then-write is allowed here.
func (r *anomalyRepository) Upsert(ctx context.Context, event anomaly.AnomalyEvent) (anomaly.AnomalyEvent, bool, error) {
	q := GetQuerier(ctx, r.db)

	reasonsJSON, err := json.Marshal(event.Reasons)
	if err != nil {
		return anomaly.AnomalyEvent{}, false, fmt.Errorf("failed to serialize anomaly reasons: %w", err)
	}

	query := `
		INSERT INTO anomaly_events (entity_type, entity_id, employee_id, score, reasons, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (entity_type, entity_id) DO UPDATE SET
			employee_id = EXCLUDED.employee_id,
			score       = EXCLUDED.score,
			reasons     = EXCLUDED.reasons,
			status      = EXCLUDED.status,
			updated_at  = NOW()
		RETURNING id, created_at, updated_at, (xmax <> 0) AS overwrote
	`

	var overwrote bool
	err = q.QueryRow(ctx, query,
		event.EntityType,
		event.EntityID,
		event.EmployeeID,
		event.Score,
		reasonsJSON,
		event.Status,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt, &overwrote)

	if err != nil {
		return anomaly.AnomalyEvent{}, false, fmt.Errorf("failed to upsert anomaly event: %w", err)
	}

	return event, overwrote, nil
}

// GetByEntity implements anomaly.AnomalyRepository.
func (r *anomalyRepository) GetByEntity(ctx context.Context, entityType anomaly.EntityType, entityID string) (anomaly.AnomalyEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entity_type, entity_id, employee_id, score, reasons, status, created_at, updated_at
		FROM anomaly_events
		WHERE entity_type = $1 AND entity_id = $2
	`

	return r.scanEvent(q.QueryRow(ctx, query, entityType, entityID))
}

// List implements anomaly.AnomalyRepository.
func (r *anomalyRepository) List(ctx context.Context, filter anomaly.AnomalyFilter) ([]anomaly.AnomalyEvent, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.EntityType != nil && *filter.EntityType != "" {
		baseWhere += fmt.Sprintf(" AND entity_type = $%d", argIdx)
		args = append(args, *filter.EntityType)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM anomaly_events WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count anomaly events: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT id, entity_type, entity_id, employee_id, score, reasons, status, created_at, updated_at
		FROM anomaly_events
		WHERE %s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query anomaly events: %w", err)
	}
	defer rows.Close()

	var events []anomaly.AnomalyEvent
	for rows.Next() {
		event, err := r.scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}

	return events, total, nil
}

// UpdateStatus implements anomaly.AnomalyRepository.
func (r *anomalyRepository) UpdateStatus(ctx context.Context, id string, status anomaly.Status) (anomaly.AnomalyEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE anomaly_events
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, entity_type, entity_id, employee_id, score, reasons, status, created_at, updated_at
	`

	event, err := r.scanEvent(q.QueryRow(ctx, query, status, id))
	if err != nil {
		return anomaly.AnomalyEvent{}, err
	}

	return event, nil
}

func (r *anomalyRepository) scanEvent(row pgx.Row) (anomaly.AnomalyEvent, error) {
	var event anomaly.AnomalyEvent
	var reasonsJSON []byte

	err := row.Scan(
		&event.ID, &event.EntityType, &event.EntityID, &event.EmployeeID,
		&event.Score, &reasonsJSON, &event.Status,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return anomaly.AnomalyEvent{}, anomaly.ErrAnomalyNotFound
		}
		return anomaly.AnomalyEvent{}, fmt.Errorf("failed to scan anomaly event: %w", err)
	}

	if err := json.Unmarshal(reasonsJSON, &event.Reasons); err != nil {
		return anomaly.AnomalyEvent{}, fmt.Errorf("failed to deserialize anomaly reasons: %w", err)
	}

	return event, nil
}

func NewAnomalyRepository(db *database.DB) anomaly.AnomalyRepository {
	return &anomalyRepository{db: db}
}
