package postgresql

import (
	"context"
	"fmt"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/company"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

// GetByID implements company.CompanyRepository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, office_latitude, office_longitude, allowed_radius_meters, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.OfficeLatitude, &c.OfficeLongitude,
		&c.AllowedRadiusMeters, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

// GetByEmployeeID implements company.CompanyRepository.
func (r *companyRepository) GetByEmployeeID(ctx context.Context, employeeID string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.name, c.office_latitude, c.office_longitude, c.allowed_radius_meters, c.created_at, c.updated_at
		FROM companies c
		JOIN employees e ON e.company_id = c.id
		WHERE e.id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&c.ID, &c.Name, &c.OfficeLatitude, &c.OfficeLongitude,
		&c.AllowedRadiusMeters, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by employee: %w", err)
	}

	return c, nil
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepository{db: db}
}
