package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/vacation"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/async"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type VacationServiceImpl struct {
	db *database.DB
	vacation.VacationRepository
	anomalyService anomaly.AnomalyService
}

// Create implements vacation.VacationService.
func (s *VacationServiceImpl) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return vacation.VacationResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return vacation.VacationResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	vac := vacation.Vacation{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		StartDate:  req.ParsedStartDate,
		EndDate:    req.ParsedEndDate,
		Type:       req.Type,
		Status:     vacation.StatusPending,
		Days:       vacation.WorkingDays(req.ParsedStartDate, req.ParsedEndDate),
	}

	created, err := s.VacationRepository.Create(ctx, vac)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	async.Go("detect-vacation", func(ctx context.Context) error {
		return s.anomalyService.DetectVacation(ctx, created)
	})

	return toVacationResponse(created), nil
}

// ListVacations implements vacation.VacationService.
func (s *VacationServiceImpl) ListVacations(ctx context.Context, filter vacation.VacationFilter) (vacation.ListVacationResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return vacation.ListVacationResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return vacation.ListVacationResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	return s.list(ctx, filter, companyID)
}

// GetMyVacations implements vacation.VacationService.
func (s *VacationServiceImpl) GetMyVacations(ctx context.Context, filter vacation.VacationFilter) (vacation.ListVacationResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return vacation.ListVacationResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return vacation.ListVacationResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return vacation.ListVacationResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	filter.EmployeeID = &employeeID
	return s.list(ctx, filter, companyID)
}

func (s *VacationServiceImpl) list(ctx context.Context, filter vacation.VacationFilter, companyID string) (vacation.ListVacationResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	vacations, total, err := s.VacationRepository.List(ctx, filter, companyID)
	if err != nil {
		return vacation.ListVacationResponse{}, err
	}

	responses := make([]vacation.VacationResponse, 0, len(vacations))
	for _, vac := range vacations {
		responses = append(responses, toVacationResponse(vac))
	}

	return vacation.ListVacationResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Vacations:  responses,
	}, nil
}

// Approve implements vacation.VacationService.
func (s *VacationServiceImpl) Approve(ctx context.Context, id string) (vacation.VacationResponse, error) {
	return s.decide(ctx, id, vacation.StatusApproved, nil)
}

// Reject implements vacation.VacationService.
func (s *VacationServiceImpl) Reject(ctx context.Context, req vacation.RejectVacationRequest) (vacation.VacationResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationResponse{}, err
	}
	return s.decide(ctx, req.ID, vacation.StatusRejected, &req.Reason)
}

func (s *VacationServiceImpl) decide(ctx context.Context, id string, status string, reason *string) (vacation.VacationResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return vacation.VacationResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return vacation.VacationResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return vacation.VacationResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	vac, err := s.VacationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return vacation.VacationResponse{}, err
	}
	if vac.Status != vacation.StatusPending {
		return vacation.VacationResponse{}, vacation.ErrVacationAlreadyProcessed
	}

	if err := s.VacationRepository.UpdateStatus(ctx, id, companyID, status, userID, reason); err != nil {
		return vacation.VacationResponse{}, err
	}

	updated, err := s.VacationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return vacation.VacationResponse{}, err
	}

	return toVacationResponse(updated), nil
}

// Delete implements vacation.VacationService.
func (s *VacationServiceImpl) Delete(ctx context.Context, id string) error {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return fmt.Errorf("company_id claim is missing or invalid")
	}

	vac, err := s.VacationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if vac.Status != vacation.StatusPending {
		return vacation.ErrVacationNotPending
	}

	return s.VacationRepository.Delete(ctx, id, companyID)
}

func toVacationResponse(vac vacation.Vacation) vacation.VacationResponse {
	var decidedAt *string
	if vac.DecidedAt != nil {
		formatted := vac.DecidedAt.Format(time.RFC3339)
		decidedAt = &formatted
	}
	return vacation.VacationResponse{
		ID:              vac.ID,
		EmployeeID:      vac.EmployeeID,
		EmployeeName:    vac.EmployeeName,
		StartDate:       vac.StartDate.Format("2006-01-02"),
		EndDate:         vac.EndDate.Format("2006-01-02"),
		Type:            vac.Type,
		Status:          vac.Status,
		Days:            vac.Days,
		DecidedBy:       vac.DecidedBy,
		DecidedAt:       decidedAt,
		RejectionReason: vac.RejectionReason,
		CreatedAt:       vac.CreatedAt.Format(time.RFC3339),
	}
}

func NewVacationService(
	db *database.DB,
	vacationRepo vacation.VacationRepository,
	anomalyService anomaly.AnomalyService,
) vacation.VacationService {
	return &VacationServiceImpl{
		db:                 db,
		VacationRepository: vacationRepo,
		anomalyService:     anomalyService,
	}
}
