package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/timeentry"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timeEntryRepository struct {
	db *database.DB
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (
			employee_id, company_id, type, ts, latitude, longitude, location, device
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID,
		entry.CompanyID,
		entry.Type,
		entry.Timestamp,
		entry.Latitude,
		entry.Longitude,
		entry.Location,
		entry.Device,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetByID(ctx context.Context, id string, companyID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.company_id, t.type, t.ts,
			   t.latitude, t.longitude, t.location, t.device,
			   t.created_at, t.updated_at,
			   e.full_name AS employee_name
		FROM time_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1 AND t.company_id = $2
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&entry.ID, &entry.EmployeeID, &entry.CompanyID, &entry.Type, &entry.Timestamp,
		&entry.Latitude, &entry.Longitude, &entry.Location, &entry.Device,
		&entry.CreatedAt, &entry.UpdatedAt,
		&entry.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry by ID: %w", err)
	}

	return entry, nil
}

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) List(ctx context.Context, filter timeentry.TimeEntryFilter, companyID string) ([]timeentry.TimeEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "t.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND t.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND t.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND t.ts >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND t.ts < ($%d::date + 1)", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	countQuery := "SELECT COUNT(*) FROM time_entries t WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time entries: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT t.id, t.employee_id, t.company_id, t.type, t.ts,
			   t.latitude, t.longitude, t.location, t.device,
			   t.created_at, t.updated_at,
			   e.full_name AS employee_name
		FROM time_entries t
		LEFT JOIN employees e ON e.id = t.employee_id
		WHERE %s
		ORDER BY t.ts %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortOrder, argIdx, argIdx+1)

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
		return nil, 0, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.CompanyID, &entry.Type, &entry.Timestamp,
			&entry.Latitude, &entry.Longitude, &entry.Location, &entry.Device,
			&entry.CreatedAt, &entry.UpdatedAt,
			&entry.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

// ListByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListByEmployee(ctx context.Context, employeeID string, filter timeentry.MyTimeEntryFilter, companyID string) ([]timeentry.TimeEntry, int64, error) {
	adminFilter := timeentry.TimeEntryFilter{
		EmployeeID: &employeeID,
		Type:       filter.Type,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		Page:       filter.Page,
		Limit:      filter.Limit,
		SortOrder:  filter.SortOrder,
	}
	return r.List(ctx, adminFilter, companyID)
}

// GetPreviousEntry implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) GetPreviousEntry(ctx context.Context, employeeID string, excludeID string) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, type, ts,
			   latitude, longitude, location, device,
			   created_at, updated_at
		FROM time_entries
		WHERE employee_id = $1
		  AND id <> $2
		ORDER BY ts DESC
		LIMIT 1
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, employeeID, excludeID).Scan(
		&entry.ID, &entry.EmployeeID, &entry.CompanyID, &entry.Type, &entry.Timestamp,
		&entry.Latitude, &entry.Longitude, &entry.Location, &entry.Device,
		&entry.CreatedAt, &entry.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no prior entry
		}
		return nil, fmt.Errorf("failed to get previous time entry: %w", err)
	}

	return &entry, nil
}

// ListRecentClockIns implements timeentry.TimeEntryRepository.
func (r *timeEntryRepository) ListRecentClockIns(ctx context.Context, employeeID string, since time.Time, limit int, excludeID string) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, type, ts,
			   latitude, longitude, location, device,
			   created_at, updated_at
		FROM time_entries
		WHERE employee_id = $1
		  AND type = 'IN'
		  AND ts >= $2
		  AND id <> $3
		ORDER BY ts DESC
		LIMIT $4
	`

	rows, err := q.Query(ctx, query, employeeID, since, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent clock-ins: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.CompanyID, &entry.Type, &entry.Timestamp,
			&entry.Latitude, &entry.Longitude, &entry.Location, &entry.Device,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepository{db: db}
}
