package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/employee"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/crypto"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/gestoria-hr/workforce-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

// EmployeeServiceImpl owns the PII boundary: SSN and IBAN are encrypted
// before they reach the repository and decrypted on the way out. A
// corrupted stored value decrypts to an absent field, never an error.
type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	codec *crypto.Codec
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	encryptedSSN, err := s.codec.Encrypt(req.SSN)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt ssn: %w", err)
	}
	encryptedIBAN, err := s.codec.Encrypt(req.IBAN)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt iban: %w", err)
	}

	emp := employee.Employee{
		CompanyID: companyID,
		FullName:  req.FullName,
		Email:     req.Email,
		Position:  req.Position,
		SSN:       encryptedSSN,
		IBAN:      encryptedIBAN,
	}

	// Uniqueness check and insert share a transaction so concurrent
	// registrations of the same email cannot both pass the check.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		exists, err := s.EmployeeRepository.ExistsByEmail(txCtx, req.Email, companyID)
		if err != nil {
			return err
		}
		if exists {
			return employee.ErrEmailExists
		}

		created, err = s.EmployeeRepository.Create(txCtx, emp)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toEmployeeResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, err := companyIDFromClaims(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.SSN != nil {
		encrypted, err := s.codec.Encrypt(req.SSN)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt ssn: %w", err)
		}
		emp.SSN = encrypted
	}
	if req.IBAN != nil {
		encrypted, err := s.codec.Encrypt(req.IBAN)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to encrypt iban: %w", err)
		}
		emp.IBAN = encrypted
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.toEmployeeResponse(updated), nil
}

func (s *EmployeeServiceImpl) toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        emp.ID,
		FullName:  emp.FullName,
		Email:     emp.Email,
		Position:  emp.Position,
		SSN:       s.codec.Decrypt(emp.SSN),
		IBAN:      s.codec.Decrypt(emp.IBAN),
		CreatedAt: emp.CreatedAt.Format(time.RFC3339),
	}
}

func companyIDFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, codec *crypto.Codec) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		codec:              codec,
	}
}
