package user

import "time"

type User struct {
	ID           string
	CompanyID    *string
	EmployeeID   *string
	Email        string
	PasswordHash *string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
