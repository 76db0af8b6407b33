package vacation

import (
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Vacation struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	StartDate       time.Time
	EndDate         time.Time
	Type            string
	Status          string
	Days            int
	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
