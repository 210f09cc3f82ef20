package pelt

import "errors"

// Sentinel errors returned by (*Engine).Predict and Predict1D; New itself
// never fails, and options are validated on each Predict call. Callers match
// them with errors.Is; none are wrapped internally (wrap at the caller's
// boundary if additional context is needed).
var (
	// ErrInvalidJump indicates Jump was configured as zero (or negative).
	ErrInvalidJump = errors.New("pelt: jump must be >= 1")

	// ErrInvalidMinLength indicates MinSegmentLength was configured as
	// zero, negative, or greater than the signal length n.
	ErrInvalidMinLength = errors.New("pelt: min_segment_length must be in [1, n]")

	// ErrNonFinitePenalty indicates the penalty passed to Predict is NaN
	// or -Inf. +Inf is permitted: it forbids any split, and the DP
	// recurrence naturally produces that result without special-casing.
	ErrNonFinitePenalty = errors.New("pelt: penalty must not be NaN or -Inf")

	// ErrUnsupportedCombination is reserved for future cost-function /
	// dimensionality combinations that are not valid together. No
	// current (CostFn, dimension) pairing trips it.
	ErrUnsupportedCombination = errors.New("pelt: unsupported cost/dimension combination")
)
