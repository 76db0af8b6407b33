package alert

import (
	"time"
)

const SeverityWarning = "WARNING"

// LocationAlert is the synchronous geofence guard's output: a visibility
// record for managers when a clock event lands outside the office radius.
// Distinct from the detector's GEOFENCE anomaly reason; both may exist for
// the same clock event.
type LocationAlert struct {
	ID                  string
	EmployeeID          string
	CompanyID           string
	TimeEntryID         string
	DistanceMeters      float64
	AllowedRadiusMeters int
	Severity            string
	Message             string
	CreatedAt           time.Time

	// DTO
	EmployeeName *string
}
