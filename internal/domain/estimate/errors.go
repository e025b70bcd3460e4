package estimate

import (
	"errors"
	"fmt"
)

// Sentinel kinds for estimation errors.
var (
	ErrComputation = errors.New("computation failed")
	ErrTimeFormat  = errors.New("malformed time")
)

// ComputationError reports an invariant violation inside the estimator.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrComputation, e.Reason)
}

// Is makes errors.Is(err, ErrComputation) hold.
func (e *ComputationError) Is(target error) bool {
	return target == ErrComputation
}
