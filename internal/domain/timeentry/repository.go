package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for clock events.
// Write-path methods include companyID to prevent cross-company access;
// the detector queries are scoped by employee only.
type TimeEntryRepository interface {
	// Create stores a new clock event
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetByID retrieves a time entry by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (TimeEntry, error)

	// List retrieves time entries with filters and pagination (admin view)
	List(ctx context.Context, filter TimeEntryFilter, companyID string) ([]TimeEntry, int64, error)

	// ListByEmployee retrieves time entries for a specific employee
	ListByEmployee(ctx context.Context, employeeID string, filter MyTimeEntryFilter, companyID string) ([]TimeEntry, int64, error)

	// GetPreviousEntry returns the most recent entry for the employee
	// excluding the given entry id, or nil when none exists.
	// Used by the duplicate-entry heuristic.
	GetPreviousEntry(ctx context.Context, employeeID string, excludeID string) (*TimeEntry, error)

	// ListRecentClockIns returns up to limit IN entries since the given
	// time for the employee, newest first, excluding the given entry id.
	// Used by the out-of-pattern heuristic.
	ListRecentClockIns(ctx context.Context, employeeID string, since time.Time, limit int, excludeID string) ([]TimeEntry, error)
}
