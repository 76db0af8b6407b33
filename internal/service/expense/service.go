package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/expense"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/async"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type ExpenseServiceImpl struct {
	db *database.DB
	expense.ExpenseRepository
	anomalyService anomaly.AnomalyService
}

// Create implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return expense.ExpenseResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return expense.ExpenseResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	exp := expense.Expense{
		EmployeeID:    employeeID,
		CompanyID:     companyID,
		Amount:        req.Amount,
		Date:          req.ParsedDate,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Status:        expense.StatusPending,
	}

	created, err := s.ExpenseRepository.Create(ctx, exp)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	async.Go("detect-expense", func(ctx context.Context) error {
		return s.anomalyService.DetectExpense(ctx, created)
	})

	return toExpenseResponse(created), nil
}

// ListExpenses implements expense.ExpenseService.
func (s *ExpenseServiceImpl) ListExpenses(ctx context.Context, filter expense.ExpenseFilter) (expense.ListExpenseResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return expense.ListExpenseResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return expense.ListExpenseResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return s.list(ctx, filter, companyID)
}

// GetMyExpenses implements expense.ExpenseService.
func (s *ExpenseServiceImpl) GetMyExpenses(ctx context.Context, filter expense.ExpenseFilter) (expense.ListExpenseResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return expense.ListExpenseResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return expense.ListExpenseResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return expense.ListExpenseResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	filter.EmployeeID = &employeeID
	return s.list(ctx, filter, companyID)
}

func (s *ExpenseServiceImpl) list(ctx context.Context, filter expense.ExpenseFilter, companyID string) (expense.ListExpenseResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	expenses, total, err := s.ExpenseRepository.List(ctx, filter, companyID)
	if err != nil {
		return expense.ListExpenseResponse{}, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		responses = append(responses, toExpenseResponse(exp))
	}

	return expense.ListExpenseResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Expenses:   responses,
	}, nil
}

// Approve implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Approve(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	return s.decide(ctx, id, expense.StatusApproved, nil)
}

// Reject implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Reject(ctx context.Context, req expense.RejectExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}
	return s.decide(ctx, req.ID, expense.StatusRejected, &req.Reason)
}

// decide applies a one-shot manager decision to a pending expense.
func (s *ExpenseServiceImpl) decide(ctx context.Context, id string, status string, reason *string) (expense.ExpenseResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return expense.ExpenseResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return expense.ExpenseResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	exp, err := s.ExpenseRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	if exp.Status != expense.StatusPending {
		return expense.ExpenseResponse{}, expense.ErrExpenseAlreadyProcessed
	}

	if err := s.ExpenseRepository.UpdateStatus(ctx, id, companyID, status, userID, reason); err != nil {
		return expense.ExpenseResponse{}, err
	}

	updated, err := s.ExpenseRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toExpenseResponse(updated), nil
}

func toExpenseResponse(exp expense.Expense) expense.ExpenseResponse {
	var decidedAt *string
	if exp.DecidedAt != nil {
		formatted := exp.DecidedAt.Format(time.RFC3339)
		decidedAt = &formatted
	}
	return expense.ExpenseResponse{
		ID:              exp.ID,
		EmployeeID:      exp.EmployeeID,
		EmployeeName:    exp.EmployeeName,
		Amount:          exp.Amount,
		Date:            exp.Date.Format("2006-01-02"),
		Category:        exp.Category,
		PaymentMethod:   exp.PaymentMethod,
		Status:          exp.Status,
		DecidedBy:       exp.DecidedBy,
		DecidedAt:       decidedAt,
		RejectionReason: exp.RejectionReason,
		CreatedAt:       exp.CreatedAt.Format(time.RFC3339),
	}
}

func NewExpenseService(
	db *database.DB,
	expenseRepo expense.ExpenseRepository,
	anomalyService anomaly.AnomalyService,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:                db,
		ExpenseRepository: expenseRepo,
		anomalyService:    anomalyService,
	}
}
