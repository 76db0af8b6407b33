package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/alert"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/company"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/timeentry"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/async"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/utils"
	"github.com/go-chi/jwtauth/v5"
)

type TimeEntryServiceImpl struct {
	db *database.DB
	timeentry.TimeEntryRepository
	alert.AlertRepository
	company.CompanyRepository
	anomalyService anomaly.AnomalyService
}

// Create implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) Create(ctx context.Context, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	entry := timeentry.TimeEntry{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Type:       timeentry.Type(req.Type),
		Timestamp:  req.ParsedTimestamp,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Location:   req.Location,
		Device:     req.Device,
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	// The inline geofence guard and the background anomaly pass are both
	// best-effort: the committed clock event is returned regardless.
	s.guardGeofence(ctx, created)

	async.Go("detect-time-entry", func(ctx context.Context) error {
		return s.anomalyService.DetectTimeEntry(ctx, created)
	})

	return toTimeEntryResponse(created), nil
}

// guardGeofence writes a warning alert when an IN/OUT event with
// coordinates lands outside the company's office radius. Alert persistence
// failures are logged and never abort the clock-in.
func (s *TimeEntryServiceImpl) guardGeofence(ctx context.Context, entry timeentry.TimeEntry) {
	if entry.Type != timeentry.TypeIn && entry.Type != timeentry.TypeOut {
		return
	}
	if entry.Latitude == nil || entry.Longitude == nil {
		return
	}

	comp, err := s.CompanyRepository.GetByID(ctx, entry.CompanyID)
	if err != nil {
		slog.Error("Failed to load company for geofence check", "error", err, "company_id", entry.CompanyID)
		return
	}

	gf := comp.Geofence()
	if gf == nil {
		return
	}

	distance := utils.DistanceInMeters(*entry.Latitude, *entry.Longitude, gf.Latitude, gf.Longitude)
	if distance <= float64(gf.RadiusMeters) {
		return
	}

	_, err = s.AlertRepository.Create(ctx, alert.LocationAlert{
		EmployeeID:          entry.EmployeeID,
		CompanyID:           entry.CompanyID,
		TimeEntryID:         entry.ID,
		DistanceMeters:      distance,
		AllowedRadiusMeters: gf.RadiusMeters,
		Severity:            alert.SeverityWarning,
		Message:             fmt.Sprintf("%s event %.0f m from the office, allowed radius %d m", entry.Type, distance, gf.RadiusMeters),
	})
	if err != nil {
		slog.Error("Failed to create location alert", "error", err, "time_entry_id", entry.ID)
	}
}

// ListTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListTimeEntries(ctx context.Context, filter timeentry.TimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	entries, total, err := s.TimeEntryRepository.List(ctx, filter, companyID)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	return toListResponse(entries, total, filter.Page, filter.Limit), nil
}

// GetMyTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetMyTimeEntries(ctx context.Context, filter timeentry.MyTimeEntryFilter) (timeentry.ListTimeEntryResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return timeentry.ListTimeEntryResponse{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	entries, total, err := s.TimeEntryRepository.ListByEmployee(ctx, employeeID, filter, companyID)
	if err != nil {
		return timeentry.ListTimeEntryResponse{}, err
	}

	return toListResponse(entries, total, filter.Page, filter.Limit), nil
}

func toTimeEntryResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:           entry.ID,
		EmployeeID:   entry.EmployeeID,
		EmployeeName: entry.EmployeeName,
		Type:         string(entry.Type),
		Timestamp:    entry.Timestamp.Format(time.RFC3339),
		Latitude:     entry.Latitude,
		Longitude:    entry.Longitude,
		Location:     entry.Location,
		Device:       entry.Device,
		CreatedAt:    entry.CreatedAt.Format(time.RFC3339),
	}
}

func toListResponse(entries []timeentry.TimeEntry, total int64, page, limit int) timeentry.ListTimeEntryResponse {
	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toTimeEntryResponse(entry))
	}
	return timeentry.ListTimeEntryResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		TimeEntries: responses,
	}
}

func NewTimeEntryService(
	db *database.DB,
	timeEntryRepo timeentry.TimeEntryRepository,
	alertRepo alert.AlertRepository,
	companyRepo company.CompanyRepository,
	anomalyService anomaly.AnomalyService,
) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:                  db,
		TimeEntryRepository: timeEntryRepo,
		AlertRepository:     alertRepo,
		CompanyRepository:   companyRepo,
		anomalyService:      anomalyService,
	}
}
