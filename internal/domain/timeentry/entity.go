package timeentry

import (
	"time"
)

type Type string

const (
	TypeIn         Type = "IN"
	TypeOut        Type = "OUT"
	TypeBreakStart Type = "BREAK_START"
	TypeBreakEnd   Type = "BREAK_END"
	TypeLunchStart Type = "LUNCH_START"
	TypeLunchEnd   Type = "LUNCH_END"
)

// Types lists every accepted clock event type.
var Types = []string{
	string(TypeIn),
	string(TypeOut),
	string(TypeBreakStart),
	string(TypeBreakEnd),
	string(TypeLunchStart),
	string(TypeLunchEnd),
}

type TimeEntry struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Type       Type
	Timestamp  time.Time
	Latitude   *float64
	Longitude  *float64
	Location   *string
	Device     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
