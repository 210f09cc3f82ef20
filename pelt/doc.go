// Package pelt implements the Pruned Exact Linear Time (PELT) algorithm
// of Killick, Fearnhead & Eckley (2012) for exact multiple-changepoint
// detection.
//
// 🚀 What is PELT?
//
//	Given a signal, a per-segment penalty and a cost function, PELT finds
//	the exact set of changepoints minimising total segment cost plus a
//	penalty per segment — in expected O(n) time (vs. O(n²) for naive
//	dynamic programming) thanks to a pruning rule that permanently
//	discards segment-start candidates once proven sub-optimal.
//
// ✨ Key features:
//   - exact (not approximate/windowed) multiple-changepoint detection
//   - L1 (median, outlier-robust) and L2 (mean, closed-form) cost functions
//   - Naive or Kahan-compensated prefix-sum accumulation
//   - jump (coarser endpoint grid) and min-segment-length constraints
//   - optional data-parallel inner loop, bit-identical to the sequential path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/pelt/pelt"
//
//	engine := pelt.New(
//	    pelt.WithCostFn(costfn.L2),
//	    pelt.WithJump(1),
//	    pelt.WithMinSegmentLength(1),
//	)
//	changepoints, err := engine.Predict(rows, penalty)
//
// Performance:
//
//   - Time:   O(n) expected, O(n²) worst case absent pruning
//   - Memory: O(n) for F, prev and the active set; O(n·d) for PrefixStats
//     when the L2 cost function is selected, O(n) scratch for L1.
//
// See example_test.go for runnable end-to-end scenarios.
package pelt
