package employee

import "time"

// Employee carries decrypted PII in memory; SSN and IBAN are stored
// encrypted and never leave the service layer in token form.
type Employee struct {
	ID        string
	CompanyID string
	FullName  string
	Email     string
	Position  *string
	SSN       *string
	IBAN      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
