package classify

import "errors"

// Sentinel kinds for classification errors.
var (
	ErrUnknownDiscipline = errors.New("unknown discipline")
)
