package signal

import "errors"

// Sentinel errors returned by the signal constructors. Callers match them
// with errors.Is; none of them are wrapped internally.
var (
	// ErrEmptySignal indicates the signal has zero rows (n == 0).
	ErrEmptySignal = errors.New("signal: empty signal")

	// ErrInconsistentDimensions indicates rows of differing dimensionality
	// were supplied (d is not uniform across rows).
	ErrInconsistentDimensions = errors.New("signal: inconsistent row dimensions")
)
