package pelt

import (
	"math"

	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/costfn"
)

// Options configures a PELT Engine. Build one via DefaultOptions and a
// chain of Option functions, or construct an Engine directly with New.
//
//	Jump               – candidate endpoints restricted to multiples of
//	                     Jump (plus the final index n). Must be >= 1.
//	MinSegmentLength   – every admitted segment [start, end) must satisfy
//	                     end-start >= MinSegmentLength. Must be in [1, n].
//	CostFn             – costfn.L1 or costfn.L2.
//	SumMode            – accum.Naive or accum.Kahan.
//	KeepInitialZero    – whether index 0 is prepended to the result.
//	Parallel           – whether the inner candidate scan at each k is
//	                     evaluated concurrently (see parallel.go). Output
//	                     is bit-wise identical to the sequential path.
type Options struct {
	Jump             int
	MinSegmentLength int
	CostFn           costfn.Kind
	SumMode          accum.Mode
	KeepInitialZero  bool
	Parallel         bool
}

// Option is a functional option applied to Options by New.
type Option func(*Options)

// DefaultOptions returns the bracketed defaults from the configuration
// surface: Jump=1, MinSegmentLength=1, CostFn=L2, SumMode=Naive,
// KeepInitialZero=false, Parallel=false.
func DefaultOptions() Options {
	return Options{
		Jump:             1,
		MinSegmentLength: 1,
		CostFn:           costfn.L2,
		SumMode:          accum.Naive,
		KeepInitialZero:  false,
		Parallel:         false,
	}
}

// WithJump sets the candidate-endpoint grid spacing.
func WithJump(jump int) Option {
	return func(o *Options) { o.Jump = jump }
}

// WithMinSegmentLength sets the minimum admissible segment length.
func WithMinSegmentLength(minLen int) Option {
	return func(o *Options) { o.MinSegmentLength = minLen }
}

// WithCostFn selects the segment-cost function.
func WithCostFn(kind costfn.Kind) Option {
	return func(o *Options) { o.CostFn = kind }
}

// WithSumMode selects the summation accumulator.
func WithSumMode(mode accum.Mode) Option {
	return func(o *Options) { o.SumMode = mode }
}

// WithKeepInitialZero includes a leading 0 in the returned changepoint
// sequence.
func WithKeepInitialZero(keep bool) Option {
	return func(o *Options) { o.KeepInitialZero = keep }
}

// WithParallel enables the data-parallel inner candidate scan. A
// performance option only: results are identical to the sequential path
// for a fixed (signal, config, penalty).
func WithParallel(parallel bool) Option {
	return func(o *Options) { o.Parallel = parallel }
}

// validate checks Options against a signal of length n, per §7's
// upfront-validation policy: every error here is raised before
// PrefixStats or the DP state are touched.
func (o Options) validate(n int) error {
	if o.Jump < 1 {
		return ErrInvalidJump
	}
	if o.MinSegmentLength < 1 || o.MinSegmentLength > n {
		return ErrInvalidMinLength
	}

	return nil
}

// validatePenalty rejects NaN and -Inf; +Inf is a legal (degenerate)
// penalty that forbids any split.
func validatePenalty(penalty float64) error {
	if math.IsNaN(penalty) || math.IsInf(penalty, -1) {
		return ErrNonFinitePenalty
	}

	return nil
}

// State reflects an Engine's position in a two-state lifecycle. New
// always returns a Configured engine (there is no exported zero-value
// constructor); each Predict call moves it to Running for its DP pass and
// back to Configured when the call returns. There are no separate
// Unconfigured or Idle states. Options are immutable for the engine's
// lifetime.
type State int32

const (
	// StateConfigured is the resting state of an Engine returned by New,
	// and the state it returns to after a Predict call completes.
	StateConfigured State = iota
	// StateRunning is set for the duration of a Predict call.
	StateRunning
)

func (s State) String() string {
	if s == StateRunning {
		return "Running"
	}

	return "Configured"
}
