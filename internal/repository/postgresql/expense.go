package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/expense"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type expenseRepository struct {
	db *database.DB
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepository) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (
			employee_id, company_id, amount, date, category, payment_method, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		exp.EmployeeID,
		exp.CompanyID,
		exp.Amount,
		exp.Date,
		exp.Category,
		exp.PaymentMethod,
		exp.Status,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)

	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return exp, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepository) GetByID(ctx context.Context, id string, companyID string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.id, x.employee_id, x.company_id, x.amount, x.date, x.category,
			   x.payment_method, x.status, x.decided_by, x.decided_at, x.rejection_reason,
			   x.created_at, x.updated_at,
			   e.full_name AS employee_name
		FROM expenses x
		LEFT JOIN employees e ON e.id = x.employee_id
		WHERE x.id = $1 AND x.company_id = $2
	`

	var exp expense.Expense
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&exp.ID, &exp.EmployeeID, &exp.CompanyID, &exp.Amount, &exp.Date, &exp.Category,
		&exp.PaymentMethod, &exp.Status, &exp.DecidedBy, &exp.DecidedAt, &exp.RejectionReason,
		&exp.CreatedAt, &exp.UpdatedAt,
		&exp.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return exp, nil
}

// List implements expense.ExpenseRepository.
func (r *expenseRepository) List(ctx context.Context, filter expense.ExpenseFilter, companyID string) ([]expense.Expense, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	baseWhere := "x.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND x.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Category != nil && *filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND x.category = $%d", argIdx)
		args = append(args, *filter.Category)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND x.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND x.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND x.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM expenses x WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT x.id, x.employee_id, x.company_id, x.amount, x.date, x.category,
			   x.payment_method, x.status, x.decided_by, x.decided_at, x.rejection_reason,
			   x.created_at, x.updated_at,
			   e.full_name AS employee_name
		FROM expenses x
		LEFT JOIN employees e ON e.id = x.employee_id
		WHERE %s
		ORDER BY x.date %s
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
		return nil, 0, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var exp expense.Expense
		err := rows.Scan(
			&exp.ID, &exp.EmployeeID, &exp.CompanyID, &exp.Amount, &exp.Date, &exp.Category,
			&exp.PaymentMethod, &exp.Status, &exp.DecidedBy, &exp.DecidedAt, &exp.RejectionReason,
			&exp.CreatedAt, &exp.UpdatedAt,
			&exp.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	return expenses, total, nil
}

// UpdateStatus implements expense.ExpenseRepository.
func (r *expenseRepository) UpdateStatus(ctx context.Context, id string, companyID string, status string, decidedBy string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses
		SET status = $1, decided_by = $2, decided_at = $3, rejection_reason = $4, updated_at = $3
		WHERE id = $5 AND company_id = $6
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, decidedBy, time.Now(), reason, id, companyID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return expense.ErrExpenseNotFound
		}
		return fmt.Errorf("failed to update expense status: %w", err)
	}

	return nil
}

// ExistsDuplicate implements expense.ExpenseRepository.
func (r *expenseRepository) ExistsDuplicate(ctx context.Context, employeeID string, amount float64, dayStart time.Time, dayEnd time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM expenses
			WHERE employee_id = $1
			  AND amount = $2
			  AND date >= $3
			  AND date <= $4
			  AND id <> $5
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, amount, dayStart, dayEnd, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check duplicate expense: %w", err)
	}

	return exists, nil
}

// CategoryStats implements expense.ExpenseRepository.
func (r *expenseRepository) CategoryStats(ctx context.Context, employeeID string, category string, since time.Time, excludeID string) (int64, float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COALESCE(AVG(amount), 0)
		FROM expenses
		WHERE employee_id = $1
		  AND category = $2
		  AND date >= $3
		  AND id <> $4
	`

	var count int64
	var mean float64
	if err := q.QueryRow(ctx, query, employeeID, category, since, excludeID).Scan(&count, &mean); err != nil {
		return 0, 0, fmt.Errorf("failed to get category stats: %w", err)
	}

	return count, mean, nil
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}
