package vacation

import "errors"

// Vacation domain errors
var (
	ErrVacationNotFound         = errors.New("vacation request not found")
	ErrVacationAlreadyProcessed = errors.New("vacation request has already been approved or rejected")
	ErrVacationNotPending       = errors.New("only pending vacation requests can be deleted")
)
