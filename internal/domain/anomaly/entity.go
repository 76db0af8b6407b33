package anomaly

import (
	"time"
)

type EntityType string

const (
	EntityTimeEntry EntityType = "TIME_ENTRY"
	EntityExpense   EntityType = "EXPENSE"
	EntityVacation  EntityType = "VACATION"
)

// EntityTypes lists every entity type the detector covers.
var EntityTypes = []string{
	string(EntityTimeEntry),
	string(EntityExpense),
	string(EntityVacation),
}

type Status string

const (
	StatusOpen          Status = "OPEN"
	StatusReviewed      Status = "REVIEWED"
	StatusResolved      Status = "RESOLVED"
	StatusFalsePositive Status = "FALSE_POSITIVE"
)

// Statuses lists every reviewer-assignable status.
var Statuses = []string{
	string(StatusOpen),
	string(StatusReviewed),
	string(StatusResolved),
	string(StatusFalsePositive),
}

// Reason codes emitted by the detectors.
const (
	CodeOffHours         = "OFF_HOURS"
	CodeDuplicateEntry   = "DUPLICATE_ENTRY"
	CodeOutOfPattern     = "OUT_OF_PATTERN"
	CodeGeofence         = "GEOFENCE"
	CodeWeekendExpense   = "WEEKEND_EXPENSE"
	CodeDuplicateExpense = "DUPLICATE_EXPENSE"
	CodeAmountOutlier    = "AMOUNT_OUTLIER"
	CodePatternMF        = "PATTERN_MF"
	CodeFrequentAbsence  = "FREQUENT_ABSENCE"
	CodeLongAbsence      = "LONG_ABSENCE"
)

// Reason is one fired heuristic: a stable code, a human-readable message
// and a positive weight contributing to the aggregate score.
type Reason struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Score   int    `json:"score"`
}

// AnomalyEvent is the detector's output. At most one exists per
// (EntityType, EntityID) pair; re-detection overwrites it.
type AnomalyEvent struct {
	ID         string
	EntityType EntityType
	EntityID   string
	EmployeeID *string
	Score      int
	Reasons    []Reason
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AggregateScore sums the fired reasons' weights, clamped to [0, 100].
func AggregateScore(reasons []Reason) int {
	total := 0
	for _, r := range reasons {
		total += r.Score
	}
	if total > 100 {
		return 100
	}
	if total < 0 {
		return 0
	}
	return total
}
