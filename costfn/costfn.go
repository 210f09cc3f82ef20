package costfn

import (
	"math"

	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/prefixstats"
)

// Cost returns the cost of segment [a, b) under the given Kind. For L2,
// st must have been built with moments (see prefixstats.Build); for L1,
// scratch must be sized to at least b-a.
func Cost(kind Kind, st *prefixstats.Stats, a, b int, sumMode accum.Mode, scratch *Scratch) float64 {
	if kind == L1 {
		return l1Cost(st, a, b, sumMode, scratch)
	}

	return l2Cost(st, a, b)
}

// l2Cost sums, over dimensions, Q[b][j]-Q[a][j] - (S[b][j]-S[a][j])²/L.
// Catastrophic cancellation can yield a tiny negative residual; it is
// clamped to zero per the numerical policy in the design notes.
func l2Cost(st *prefixstats.Stats, a, b int) float64 {
	l := float64(b - a)
	sig := st.Signal()
	var total float64
	for j := 0; j < sig.D(); j++ {
		s := st.Sum(a, b, j)
		q := st.SumSq(a, b, j)
		v := q - s*s/l
		if v < 0 {
			v = 0
		}
		total += v
	}

	return total
}

// l1Cost materialises each dimension's values into scratch, selects the
// median via quickselect, and sums absolute deviations with the
// configured accumulator.
func l1Cost(st *prefixstats.Stats, a, b int, sumMode accum.Mode, scratch *Scratch) float64 {
	sig := st.Signal()
	l := b - a
	var total float64
	for j := 0; j < sig.D(); j++ {
		values := scratch.values[:l]
		for i := 0; i < l; i++ {
			values[i] = sig.At(a+i, j)
		}
		med := median(values)

		deviations := scratch.deviations[:l]
		for i := 0; i < l; i++ {
			deviations[i] = math.Abs(values[i] - med)
		}
		total += accum.Sum(sumMode, deviations)
	}

	return total
}
