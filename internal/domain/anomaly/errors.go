package anomaly

import "errors"

// Anomaly domain errors
var (
	ErrAnomalyNotFound = errors.New("anomaly event not found")
	ErrInvalidStatus   = errors.New("invalid anomaly status")
)
