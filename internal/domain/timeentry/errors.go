package timeentry

import "errors"

// Time entry domain errors
var (
	ErrTimeEntryNotFound = errors.New("time entry not found")
)
