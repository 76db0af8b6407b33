package anomaly

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/domain/anomaly"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/company"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/expense"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/timeentry"
	"github.com/gestoria-hr/workforce-backend-go/internal/domain/vacation"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/database"
	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/utils"
)

// Heuristic thresholds.
const (
	offHoursEarliest = 5  // local hour
	offHoursLatest   = 22 // local hour

	duplicateEntryGap = 30 * time.Minute

	patternLookbackDays   = 90
	patternSampleSize     = 30
	patternMinSameWeekday = 5
	patternMaxDriftMin    = 120

	outlierMinSamples   = 3
	outlierFlatFloor    = 100.0
	outlierColdStart    = 500.0
	outlierLookbackDays = 90

	frequentAbsenceLookbackDays = 60
	frequentAbsenceMin          = 3
	longAbsenceWorkingDays      = 10
)

type AnomalyServiceImpl struct {
	db *database.DB
	anomaly.AnomalyRepository
	timeentry.TimeEntryRepository
	expense.ExpenseRepository
	vacation.VacationRepository
	company.CompanyRepository
}

// DetectTimeEntry implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) DetectTimeEntry(ctx context.Context, entry timeentry.TimeEntry) error {
	var reasons []anomaly.Reason

	if hour := entry.Timestamp.Hour(); hour < offHoursEarliest || hour > offHoursLatest {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeOffHours,
			Message: fmt.Sprintf("Clock event at %s is outside 05:00-22:00", entry.Timestamp.Format("15:04")),
			Score:   20,
		})
	}

	prev, err := s.TimeEntryRepository.GetPreviousEntry(ctx, entry.EmployeeID, entry.ID)
	if err != nil {
		return fmt.Errorf("failed to load previous clock event: %w", err)
	}
	if prev != nil && prev.Type == entry.Type {
		gap := entry.Timestamp.Sub(prev.Timestamp)
		if gap < 0 {
			gap = -gap
		}
		if gap < duplicateEntryGap {
			reasons = append(reasons, anomaly.Reason{
				Code:    anomaly.CodeDuplicateEntry,
				Message: fmt.Sprintf("Repeated %s event %d minutes after the previous one", entry.Type, int(gap.Minutes())),
				Score:   15,
			})
		}
	}

	if entry.Type == timeentry.TypeIn {
		reason, err := s.detectOutOfPattern(ctx, entry)
		if err != nil {
			return err
		}
		if reason != nil {
			reasons = append(reasons, *reason)
		}
	}

	if entry.Latitude != nil && entry.Longitude != nil {
		reason, err := s.detectGeofence(ctx, entry)
		if err != nil {
			return err
		}
		if reason != nil {
			reasons = append(reasons, *reason)
		}
	}

	return s.sink(ctx, anomaly.EntityTimeEntry, entry.ID, entry.EmployeeID, reasons)
}

// detectOutOfPattern compares the clock-in minute-of-day against the
// employee's median for the same weekday over recent history.
func (s *AnomalyServiceImpl) detectOutOfPattern(ctx context.Context, entry timeentry.TimeEntry) (*anomaly.Reason, error) {
	since := entry.Timestamp.AddDate(0, 0, -patternLookbackDays)
	recent, err := s.TimeEntryRepository.ListRecentClockIns(ctx, entry.EmployeeID, since, patternSampleSize, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent clock-ins: %w", err)
	}

	weekday := entry.Timestamp.Weekday()
	var minutes []int
	for _, e := range recent {
		if e.Timestamp.Weekday() == weekday {
			minutes = append(minutes, e.Timestamp.Hour()*60+e.Timestamp.Minute())
		}
	}
	if len(minutes) < patternMinSameWeekday {
		return nil, nil
	}

	median := medianMinute(minutes)
	current := entry.Timestamp.Hour()*60 + entry.Timestamp.Minute()
	drift := current - median
	if drift < 0 {
		drift = -drift
	}
	if drift <= patternMaxDriftMin {
		return nil, nil
	}

	return &anomaly.Reason{
		Code:    anomaly.CodeOutOfPattern,
		Message: fmt.Sprintf("Clock-in deviates %d minutes from the usual %s time", drift, weekday),
		Score:   20,
	}, nil
}

func (s *AnomalyServiceImpl) detectGeofence(ctx context.Context, entry timeentry.TimeEntry) (*anomaly.Reason, error) {
	comp, err := s.CompanyRepository.GetByEmployeeID(ctx, entry.EmployeeID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load company geofence: %w", err)
	}

	gf := comp.Geofence()
	if gf == nil {
		return nil, nil
	}

	distance := utils.DistanceInMeters(*entry.Latitude, *entry.Longitude, gf.Latitude, gf.Longitude)
	if distance <= float64(gf.RadiusMeters) {
		return nil, nil
	}

	return &anomaly.Reason{
		Code:    anomaly.CodeGeofence,
		Message: fmt.Sprintf("Clock event %.0f m from the office, beyond the %d m radius", distance, gf.RadiusMeters),
		Score:   25,
	}, nil
}

// DetectExpense implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) DetectExpense(ctx context.Context, exp expense.Expense) error {
	var reasons []anomaly.Reason

	if wd := exp.Date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeWeekendExpense,
			Message: fmt.Sprintf("Expense dated %s falls on a %s", exp.Date.Format("2006-01-02"), wd),
			Score:   10,
		})
	}

	dayStart := time.Date(exp.Date.Year(), exp.Date.Month(), exp.Date.Day(), 0, 0, 0, 0, exp.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	duplicate, err := s.ExpenseRepository.ExistsDuplicate(ctx, exp.EmployeeID, exp.Amount, dayStart, dayEnd, exp.ID)
	if err != nil {
		return fmt.Errorf("failed to check duplicate expense: %w", err)
	}
	if duplicate {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeDuplicateExpense,
			Message: fmt.Sprintf("Another expense of %.2f exists on the same day", exp.Amount),
			Score:   20,
		})
	}

	since := exp.Date.AddDate(0, 0, -outlierLookbackDays)
	count, mean, err := s.ExpenseRepository.CategoryStats(ctx, exp.EmployeeID, exp.Category, since, exp.ID)
	if err != nil {
		return fmt.Errorf("failed to load category stats: %w", err)
	}
	threshold := outlierColdStart
	if count >= outlierMinSamples {
		threshold = math.Max(outlierFlatFloor, mean*2)
	}
	if exp.Amount >= threshold {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeAmountOutlier,
			Message: fmt.Sprintf("Amount %.2f reaches the %.2f threshold for category %s", exp.Amount, threshold, exp.Category),
			Score:   25,
		})
	}

	return s.sink(ctx, anomaly.EntityExpense, exp.ID, exp.EmployeeID, reasons)
}

// DetectVacation implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) DetectVacation(ctx context.Context, vac vacation.Vacation) error {
	var reasons []anomaly.Reason

	if wd := vac.StartDate.Weekday(); wd == time.Monday || wd == time.Friday {
		count, err := s.VacationRepository.CountStartingSince(ctx, vac.EmployeeID, vac.StartDate.AddDate(0, 0, -patternLookbackDays), vac.ID, false)
		if err != nil {
			return fmt.Errorf("failed to count recent absence requests: %w", err)
		}
		if count >= 2 {
			reasons = append(reasons, anomaly.Reason{
				Code:    anomaly.CodePatternMF,
				Message: fmt.Sprintf("Starts on %s with %d other requests in the last 90 days", wd, count),
				Score:   20,
			})
		}
	}

	recent, err := s.VacationRepository.CountStartingSince(ctx, vac.EmployeeID, vac.StartDate.AddDate(0, 0, -frequentAbsenceLookbackDays), vac.ID, true)
	if err != nil {
		return fmt.Errorf("failed to count recent absence requests: %w", err)
	}
	if recent >= frequentAbsenceMin {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeFrequentAbsence,
			Message: fmt.Sprintf("%d absence requests in the last 60 days", recent),
			Score:   20,
		})
	}

	if days := vacation.WorkingDays(vac.StartDate, vac.EndDate); days > longAbsenceWorkingDays {
		reasons = append(reasons, anomaly.Reason{
			Code:    anomaly.CodeLongAbsence,
			Message: fmt.Sprintf("Absence spans %d working days", days),
			Score:   15,
		})
	}

	return s.sink(ctx, anomaly.EntityVacation, vac.ID, vac.EmployeeID, reasons)
}

// sink records the detector outcome. An empty reason set writes nothing;
// otherwise the record for (entityType, entityID) is inserted or
// overwritten atomically with its status reset to OPEN.
func (s *AnomalyServiceImpl) sink(ctx context.Context, entityType anomaly.EntityType, entityID string, employeeID string, reasons []anomaly.Reason) error {
	if len(reasons) == 0 {
		return nil
	}

	event := anomaly.AnomalyEvent{
		EntityType: entityType,
		EntityID:   entityID,
		EmployeeID: &employeeID,
		Score:      anomaly.AggregateScore(reasons),
		Reasons:    reasons,
		Status:     anomaly.StatusOpen,
	}

	stored, overwrote, err := s.AnomalyRepository.Upsert(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to record anomaly for %s %s: %w", entityType, entityID, err)
	}
	if overwrote {
		slog.Info("Anomaly record overwritten and reopened",
			"entity_type", entityType, "entity_id", entityID, "score", stored.Score)
	}

	return nil
}

// ListAnomalies implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) ListAnomalies(ctx context.Context, filter anomaly.AnomalyFilter) (anomaly.ListAnomalyResponse, error) {
	if err := filter.Validate(); err != nil {
		return anomaly.ListAnomalyResponse{}, err
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	events, total, err := s.AnomalyRepository.List(ctx, filter)
	if err != nil {
		return anomaly.ListAnomalyResponse{}, err
	}

	anomalies := make([]anomaly.AnomalyResponse, 0, len(events))
	for _, event := range events {
		anomalies = append(anomalies, toAnomalyResponse(event))
	}

	return anomaly.ListAnomalyResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Anomalies:  anomalies,
	}, nil
}

// UpdateStatus implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) UpdateStatus(ctx context.Context, req anomaly.UpdateStatusRequest) (anomaly.AnomalyResponse, error) {
	if err := req.Validate(); err != nil {
		return anomaly.AnomalyResponse{}, err
	}

	event, err := s.AnomalyRepository.UpdateStatus(ctx, req.ID, anomaly.Status(req.Status))
	if err != nil {
		return anomaly.AnomalyResponse{}, err
	}

	return toAnomalyResponse(event), nil
}

func toAnomalyResponse(event anomaly.AnomalyEvent) anomaly.AnomalyResponse {
	return anomaly.AnomalyResponse{
		ID:         event.ID,
		EntityType: string(event.EntityType),
		EntityID:   event.EntityID,
		EmployeeID: event.EmployeeID,
		Score:      event.Score,
		Reasons:    event.Reasons,
		Status:     string(event.Status),
		CreatedAt:  event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  event.UpdatedAt.Format(time.RFC3339),
	}
}

// medianMinute returns the median of the given minute-of-day values; an
// even count averages the two middle values, rounding half away from zero.
func medianMinute(minutes []int) int {
	sorted := make([]int, len(minutes))
	copy(sorted, minutes)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return int(math.Round(float64(sorted[mid-1]+sorted[mid]) / 2))
}

func NewAnomalyService(
	db *database.DB,
	anomalyRepo anomaly.AnomalyRepository,
	timeEntryRepo timeentry.TimeEntryRepository,
	expenseRepo expense.ExpenseRepository,
	vacationRepo vacation.VacationRepository,
	companyRepo company.CompanyRepository,
) anomaly.AnomalyService {
	return &AnomalyServiceImpl{
		db:                  db,
		AnomalyRepository:   anomalyRepo,
		TimeEntryRepository: timeEntryRepo,
		ExpenseRepository:   expenseRepo,
		VacationRepository:  vacationRepo,
		CompanyRepository:   companyRepo,
	}
}
