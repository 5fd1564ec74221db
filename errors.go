package cubesolver

import "errors"

// Sentinel errors for the cubesolver package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubesolver: invalid move notation")

	// Oracle errors
	ErrNoEstimate        = errors.New("cubesolver: no integer in oracle response")
	ErrEstimateRange     = errors.New("cubesolver: oracle estimate out of range")
	ErrOracleUnavailable = errors.New("cubesolver: oracle unavailable")
)
