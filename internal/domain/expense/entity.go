package expense

import (
	"time"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Expense struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	Amount          float64
	Date            time.Time
	Category        string
	PaymentMethod   string
	Status          string
	DecidedBy       *string
	DecidedAt       *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}
