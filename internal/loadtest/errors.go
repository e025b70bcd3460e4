package loadtest

import "errors"

// Sentinel errors for load test runs.
var (
	ErrInvalidConfig = errors.New("invalid load test config")
	ErrVerification  = errors.New("verification failed")
)
