package pelt

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/costfn"
	"github.com/katalvlaran/pelt/prefixstats"
	"github.com/katalvlaran/pelt/signal"
)

// Engine runs PELT against signals with a fixed Options configuration.
// Configuration is immutable after New; a single Engine value may drive
// many sequential Predict calls, each of which owns its own DP state
// (F, prev, the active set, and L1 scratch) for the duration of the call.
type Engine struct {
	opts  Options
	state int32 // State, accessed atomically; see State's doc comment.
}

// New configures an Engine, applying opts over DefaultOptions in order.
// The returned Engine starts in StateConfigured.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{opts: o, state: int32(StateConfigured)}
}

// Options returns the engine's current configuration.
func (e *Engine) Options() Options { return e.opts }

// State reports the engine's position in its lifecycle.
func (e *Engine) State() State { return State(atomic.LoadInt32(&e.state)) }

// Predict runs PELT over an n×d row-major signal and returns the
// ascending changepoint sequence described in the package's design
// notes. penalty is expected to be >= 0; NaN and -Inf are rejected with
// ErrNonFinitePenalty, +Inf is accepted.
func (e *Engine) Predict(rows [][]float64, penalty float64) ([]int, error) {
	sig, err := signal.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return e.predict(sig, penalty)
}

// Predict1D is sugar for Predict on a one-dimensional (d=1) signal.
func (e *Engine) Predict1D(values []float64, penalty float64) ([]int, error) {
	sig, err := signal.FromFlat(values)
	if err != nil {
		return nil, err
	}

	return e.predict(sig, penalty)
}

func (e *Engine) predict(sig *signal.Signal, penalty float64) ([]int, error) {
	n := sig.N()
	if err := e.opts.validate(n); err != nil {
		return nil, err
	}
	if err := validatePenalty(penalty); err != nil {
		return nil, err
	}

	atomic.StoreInt32(&e.state, int32(StateRunning))
	defer atomic.StoreInt32(&e.state, int32(StateConfigured))

	kind := e.opts.CostFn
	sumMode := e.opts.SumMode
	minLen := e.opts.MinSegmentLength

	st := prefixstats.Build(sig, sumMode, kind == costfn.L2)
	costOf := newCostFunc(kind, st, sumMode, n, e.opts.Parallel)

	candidates := candidateEndpoints(n, e.opts.Jump)

	f := make([]float64, n+1)
	for k := 1; k <= n; k++ {
		f[k] = math.Inf(1)
	}
	f[0] = -penalty
	prev := make([]int, n+1)

	r := newActiveSet(len(candidates) + 1)
	r.append(0)

	for _, k := range candidates {
		score := func(s int) (float64, bool) {
			if k-s < minLen {
				return 0, false
			}

			return f[s] + costOf(s, k) + penalty, true
		}

		var bestStart int
		var bestCost float64
		if e.opts.Parallel {
			bestStart, bestCost = bestCandidateParallel(r.view(), score)
		} else {
			bestStart, bestCost = bestCandidate(r.view(), score)
		}

		if bestStart == -1 {
			// No admissible start under MinSegmentLength: k remains
			// unreachable and cannot serve as a future start.
			continue
		}

		f[k] = bestCost
		prev[k] = bestStart

		r.prune(func(s int) bool {
			return f[s]+costOf(s, k) >= f[k]
		})

		if !math.IsInf(f[k], 1) && k+minLen <= n {
			r.append(k)
		}
	}

	return reconstruct(n, prev, e.opts.KeepInitialZero), nil
}

// candidateEndpoints returns K: every multiple of jump up to n, plus n
// itself if not already present (§4.4's "augmented by n" rule).
func candidateEndpoints(n, jump int) []int {
	k := make([]int, 0, n/jump+1)
	for i := jump; i <= n; i += jump {
		k = append(k, i)
	}
	if len(k) == 0 || k[len(k)-1] != n {
		k = append(k, n)
	}

	return k
}

// newCostFunc returns a (s, k) -> cost closure over the configured cost
// kind. For L1 it owns the scratch buffer(s) the quickselect median
// needs: a single reused Scratch when running sequentially, or a
// sync.Pool of them when parallel, since concurrent candidate scores
// would otherwise race on one shared buffer. L2 needs no scratch at all
// — it only reads the (read-only, already-built) PrefixStats.
func newCostFunc(kind costfn.Kind, st *prefixstats.Stats, sumMode accum.Mode, n int, parallel bool) func(s, k int) float64 {
	if kind != costfn.L1 {
		return func(s, k int) float64 {
			return costfn.Cost(kind, st, s, k, sumMode, nil)
		}
	}

	if !parallel {
		scratch := costfn.NewScratch(n)

		return func(s, k int) float64 {
			return costfn.Cost(kind, st, s, k, sumMode, scratch)
		}
	}

	pool := &sync.Pool{New: func() any { return costfn.NewScratch(n) }}

	return func(s, k int) float64 {
		scratch := pool.Get().(*costfn.Scratch)
		defer pool.Put(scratch)

		return costfn.Cost(kind, st, s, k, sumMode, scratch)
	}
}

// reconstruct walks prev backwards from n and returns the ascending
// changepoint sequence, prepending 0 when requested.
func reconstruct(n int, prev []int, keepInitialZero bool) []int {
	rev := make([]int, 0, len(prev))
	for k := n; k > 0; k = prev[k] {
		rev = append(rev, k)
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	if keepInitialZero {
		rev = append([]int{0}, rev...)
	}

	return rev
}
