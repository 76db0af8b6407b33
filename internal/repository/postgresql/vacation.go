package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/vacation"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepository struct {
	db *database.DB
}

// Create implements vacation.VacationRepository.
func (r *vacationRepository) Create(ctx context.Context, vac vacation.Vacation) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacations (
			employee_id, company_id, start_date, end_date, type, status, days
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		vac.EmployeeID,
		vac.CompanyID,
		vac.StartDate,
		vac.EndDate,
		vac.Type,
		vac.Status,
		vac.Days,
	).Scan(&vac.ID, &vac.CreatedAt, &vac.UpdatedAt)

	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return vac, nil
}

// GetByID implements vacation.VacationRepository.
func (r *vacationRepository) GetByID(ctx context.Context, id string, companyID string) (vacation.Vacation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT v.id, v.employee_id, v.company_id, v.start_date, v.end_date,
			   v.type, v.status, v.days, v.decided_by, v.decided_at, v.rejection_reason,
			   v.created_at, v.updated_at,
			   e.full_name AS employee_name
		FROM vacations v
		LEFT JOIN employees e ON e.id = v.employee_id
		WHERE v.id = $1 AND v.company_id = $2
	`

	var vac vacation.Vacation
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&vac.ID, &vac.EmployeeID, &vac.CompanyID, &vac.StartDate, &vac.EndDate,
		&vac.Type, &vac.Status, &vac.Days, &vac.DecidedBy, &vac.DecidedAt, &vac.RejectionReason,
		&vac.CreatedAt, &vac.UpdatedAt,
		&vac.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return vacation.Vacation{}, vacation.ErrVacationNotFound
		}
		return vacation.Vacation{}, fmt.Errorf("failed to get vacation by ID: %w", err)
	}

	return vac, nil
}

// List implements vacation.VacationRepository.
func (r *vacationRepository) List(ctx context.Context, filter vacation.VacationFilter, companyID string) ([]vacation.Vacation, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "v.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND v.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND v.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND v.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND v.start_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND v.start_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM vacations v WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vacations: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT v.id, v.employee_id, v.company_id, v.start_date, v.end_date,
			   v.type, v.status, v.days, v.decided_by, v.decided_at, v.rejection_reason,
			   v.created_at, v.updated_at,
			   e.full_name AS employee_name
		FROM vacations v
		LEFT JOIN employees e ON e.id = v.employee_id
		WHERE %s
		ORDER BY v.start_date %s
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
		return nil, 0, fmt.Errorf("failed to query vacations: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.Vacation
	for rows.Next() {
		var vac vacation.Vacation
		err := rows.Scan(
			&vac.ID, &vac.EmployeeID, &vac.CompanyID, &vac.StartDate, &vac.EndDate,
			&vac.Type, &vac.Status, &vac.Days, &vac.DecidedBy, &vac.DecidedAt, &vac.RejectionReason,
			&vac.CreatedAt, &vac.UpdatedAt,
			&vac.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan vacation: %w", err)
		}
		vacations = append(vacations, vac)
	}

	return vacations, total, nil
}

// UpdateStatus implements vacation.VacationRepository.
func (r *vacationRepository) UpdateStatus(ctx context.Context, id string, companyID string, status string, decidedBy string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacations
		SET status = $1, decided_by = $2, decided_at = $3, rejection_reason = $4, updated_at = $3
		WHERE id = $5 AND company_id = $6
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, decidedBy, time.Now(), reason, id, companyID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return vacation.ErrVacationNotFound
		}
		return fmt.Errorf("failed to update vacation status: %w", err)
	}

	return nil
}

// Delete implements vacation.VacationRepository.
func (r *vacationRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM vacations WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return vacation.ErrVacationNotFound
	}

	return nil
}

// CountStartingSince implements vacation.VacationRepository.
func (r *vacationRepository) CountStartingSince(ctx context.Context, employeeID string, since time.Time, excludeID string, excludeRejected bool) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM vacations
		WHERE employee_id = $1
		  AND start_date >= $2
		  AND id <> $3
	`
	args := []interface{}{employeeID, since, excludeID}
	if excludeRejected {
		query += " AND status <> $4"
		args = append(args, vacation.StatusRejected)
	}

	var count int64
	if err := q.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vacation requests: %w", err)
	}

	return count, nil
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepository{db: db}
}
