package race

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownCategory = errors.New("unknown race category")
)
