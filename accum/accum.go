package accum

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Mode selects which Strategy a call configures PrefixStats and CostFn's
// L1 deviation sum with.
type Mode int

const (
	// Naive accumulates samples with an ordinary running total. Cheapest,
	// adequate for well-conditioned signals.
	Naive Mode = iota

	// Kahan accumulates samples with compensated (Kahan-Babuska) summation,
	// tracking a running error term so large sums of nearly-cancelling
	// values stay accurate near machine precision.
	Kahan
)

// Strategy is the tiny incremental-summation capability prefix-sum
// construction is built on: Add consumes one sample at a time, Sum
// returns the running total, Reset starts a new accumulation without
// reallocating.
type Strategy interface {
	Add(x float64)
	Sum() float64
	Reset()
}

// New returns a fresh Strategy for the given Mode. Unknown modes fall
// back to Naive.
func New(mode Mode) Strategy {
	if mode == Kahan {
		return &kahanStrategy{}
	}

	return &naiveStrategy{}
}

// Sum sums xs in one shot using the given Mode's strategy. For Naive it
// delegates to gonum's floats.Sum (a tight, allocation-free loop); Kahan
// has no off-the-shelf equivalent in gonum, so it runs the compensated
// loop by hand. Used by CostFn's L1 deviation sum and by callers that
// just want a one-off accurate sum without building a Strategy.
func Sum(mode Mode, xs []float64) float64 {
	if mode == Naive {
		return floats.Sum(xs)
	}

	s := New(mode)
	for _, x := range xs {
		s.Add(x)
	}

	return s.Sum()
}

type naiveStrategy struct {
	total float64
}

func (s *naiveStrategy) Add(x float64) { s.total += x }
func (s *naiveStrategy) Sum() float64  { return s.total }
func (s *naiveStrategy) Reset()        { s.total = 0 }

// kahanStrategy implements compensated (Kahan-Babuska / Neumaier)
// summation: c accumulates the low-order bits lost by every addition,
// whichever operand was the smaller, and is folded back in by Sum.
type kahanStrategy struct {
	total float64
	c     float64
}

func (s *kahanStrategy) Add(x float64) {
	t := s.total + x
	if math.Abs(s.total) >= math.Abs(x) {
		s.c += (s.total - t) + x
	} else {
		s.c += (x - t) + s.total
	}
	s.total = t
}

func (s *kahanStrategy) Sum() float64 { return s.total + s.c }

func (s *kahanStrategy) Reset() {
	s.total = 0
	s.c = 0
}
