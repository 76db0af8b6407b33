package vacation

import (
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// VACATION DTOs
// ========================================

var vacationTypes = []string{"VACATION", "SICK", "PERSONAL", "UNPAID", "OTHER"}

type CreateVacationRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`   // YYYY-MM-DD
	Type      string `json:"type"`

	// Parsed by Validate
	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

func (r *CreateVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, vacationTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of VACATION, SICK, PERSONAL, UNPAID, OTHER",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be YYYY-MM-DD",
		})
	}

	if okStart && okEnd {
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
		r.ParsedStartDate = start
		r.ParsedEndDate = end
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkingDays counts Monday-to-Friday days in the inclusive date range.
func WorkingDays(start, end time.Time) int {
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}

type RejectVacationRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectVacationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type VacationFilter struct {
	EmployeeID *string
	Type       *string
	Status     *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortOrder  string
}

type VacationResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Type            string  `json:"type"`
	Status          string  `json:"status"`
	Days            int     `json:"days"`
	DecidedBy       *string `json:"decided_by,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type ListVacationResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Vacations  []VacationResponse `json:"vacations"`
}
