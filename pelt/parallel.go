package pelt

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// candidateScore is the per-candidate evaluation at a fixed k: the
// relaxed cost of starting segment [s, k) given the current F, or ok=false
// if s is infeasible (k-s < MinSegmentLength).
type candidateScore func(s int) (cost float64, ok bool)

// bestCandidate scans candidates in ascending order and returns the
// smallest-cost one, breaking ties toward the smallest s. This is the
// sequential path; bestCandidateParallel reduces its collected scores
// with the same rule.
func bestCandidate(candidates []int, score candidateScore) (bestStart int, bestCost float64) {
	bestStart = -1
	bestCost = math.Inf(1)
	for _, s := range candidates {
		cost, ok := score(s)
		if !ok {
			continue
		}
		if cost < bestCost {
			bestCost = cost
			bestStart = s
		}
	}

	return bestStart, bestCost
}

// bestCandidateParallel evaluates score(s) for every candidate
// concurrently via a bounded worker pool (errgroup.Group), then reduces
// sequentially with the same ascending-order, smallest-s tie-break as
// bestCandidate — so the two paths are bit-wise identical for a fixed
// Accumulator. Scoring is read-only and side-effect-free, so there is no
// synchronization needed beyond collecting results.
func bestCandidateParallel(candidates []int, score candidateScore) (bestStart int, bestCost float64) {
	type result struct {
		cost float64
		ok   bool
	}
	results := make([]result, len(candidates))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, s := range candidates {
		idx, s := idx, s
		g.Go(func() error {
			cost, ok := score(s)
			results[idx] = result{cost: cost, ok: ok}

			return nil
		})
	}
	_ = g.Wait() // score never returns an error; nothing to propagate

	bestStart = -1
	bestCost = math.Inf(1)
	for i, r := range results {
		if !r.ok {
			continue
		}
		if r.cost < bestCost {
			bestCost = r.cost
			bestStart = candidates[i]
		}
	}

	return bestStart, bestCost
}
