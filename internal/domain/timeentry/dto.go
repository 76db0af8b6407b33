package timeentry

import (
	"time"

	"github.com/gestoria-hr/workforce-backend-go/internal/pkg/validator"
)

// ========================================
// TIME ENTRY DTOs
// ========================================

// Clock writes reject stale or premature timestamps.
const (
	MaxPastWindow   = 24 * time.Hour
	MaxFutureWindow = 5 * time.Minute
)

type CreateTimeEntryRequest struct {
	Type      string   `json:"type"`
	Timestamp string   `json:"timestamp"` // RFC 3339; empty means "now"
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Location  *string  `json:"location,omitempty"`
	Device    *string  `json:"device,omitempty"`

	// Parsed by Validate
	ParsedTimestamp time.Time `json:"-"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of IN, OUT, BREAK_START, BREAK_END, LUNCH_START, LUNCH_END",
		})
	}

	now := time.Now()
	if validator.IsEmpty(r.Timestamp) {
		r.ParsedTimestamp = now
	} else {
		ts, err := time.Parse(time.RFC3339, r.Timestamp)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be RFC 3339",
			})
		} else {
			r.ParsedTimestamp = ts
		}
	}

	if !r.ParsedTimestamp.IsZero() {
		if r.ParsedTimestamp.Before(now.Add(-MaxPastWindow)) {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp is more than 24 hours in the past",
			})
		}
		if r.ParsedTimestamp.After(now.Add(MaxFutureWindow)) {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp is more than 5 minutes in the future",
			})
		}
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeEntryFilter struct {
	EmployeeID *string
	Type       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortOrder  string
}

type MyTimeEntryFilter struct {
	Type      *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
	SortOrder string
}

type TimeEntryResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	Type         string   `json:"type"`
	Timestamp    string   `json:"timestamp"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Device       *string  `json:"device,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type ListTimeEntryResponse struct {
	TotalCount  int64               `json:"total_count"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
	TotalPages  int                 `json:"total_pages"`
	TimeEntries []TimeEntryResponse `json:"time_entries"`
}
