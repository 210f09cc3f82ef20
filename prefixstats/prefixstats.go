package prefixstats

import (
	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/signal"
)

// Stats holds the prefix-sum and prefix-sum-of-squares arrays for one
// signal, plus a reference back to that signal so costfn's L1 path can
// fetch raw samples without a second structure.
//
// S[k][j] = Σ_{i<k} x[i][j], Q[k][j] = Σ_{i<k} x[i][j]², both length n+1
// with S[0] = Q[0] = 0. Nil when Build was called with moments=false.
type Stats struct {
	sig *signal.Signal
	s   [][]float64
	q   [][]float64
}

// Build walks sig once and, if moments is true, constructs S and Q using
// the given accum.Mode. moments should be false for the L1 cost function,
// which derives its cost from raw samples and a per-query median instead.
func Build(sig *signal.Signal, mode accum.Mode, moments bool) *Stats {
	st := &Stats{sig: sig}
	if !moments {
		return st
	}

	n, d := sig.N(), sig.D()
	st.s = make([][]float64, n+1)
	st.q = make([][]float64, n+1)
	st.s[0] = make([]float64, d)
	st.q[0] = make([]float64, d)

	sumAcc := make([]accum.Strategy, d)
	sqAcc := make([]accum.Strategy, d)
	for j := 0; j < d; j++ {
		sumAcc[j] = accum.New(mode)
		sqAcc[j] = accum.New(mode)
	}

	for k := 0; k < n; k++ {
		st.s[k+1] = make([]float64, d)
		st.q[k+1] = make([]float64, d)
		for j := 0; j < d; j++ {
			x := sig.At(k, j)
			sumAcc[j].Add(x)
			sqAcc[j].Add(x * x)
			st.s[k+1][j] = sumAcc[j].Sum()
			st.q[k+1][j] = sqAcc[j].Sum()
		}
	}

	return st
}

// Signal returns the underlying signal the stats were built from.
func (st *Stats) Signal() *signal.Signal { return st.sig }

// HasMoments reports whether S and Q were built (see Build's moments
// parameter).
func (st *Stats) HasMoments() bool { return st.s != nil }

// Sum returns Σ_{i=a}^{b-1} x[i][j]. Requires HasMoments.
func (st *Stats) Sum(a, b, j int) float64 {
	return st.s[b][j] - st.s[a][j]
}

// SumSq returns Σ_{i=a}^{b-1} x[i][j]². Requires HasMoments.
func (st *Stats) SumSq(a, b, j int) float64 {
	return st.q[b][j] - st.q[a][j]
}

// Mean returns the mean of x[a..b][j]. Requires HasMoments.
func (st *Stats) Mean(a, b, j int) float64 {
	return st.Sum(a, b, j) / float64(b-a)
}
