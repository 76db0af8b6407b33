package company

import "errors"

// Company domain errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)
