// Package prefixstats precomputes the structures that let PELT answer a
// segment's sum, sum-of-squares, and mean in O(d) time for any half-open
// range [start, end): per-dimension prefix sums S and prefix sums of
// squares Q, each of length n+1, built once per predict call and read
// many times during the dynamic program.
//
// Design goals:
//   - One linear pass over the signal, consistent with the configured
//     accum.Strategy (Naive or Kahan); no later re-derivation.
//   - O(d) queries with no allocation: Sum, SumSq and Mean all index
//     straight into S/Q.
//   - S and Q are skipped entirely when the caller only needs the L1
//     cost function, which does not use them (see costfn.L1).
//
// Complexity: O(n·d) to build, O(d) per query, O(n·d) memory for S and Q
// combined (zero extra memory when moments are not requested).
package prefixstats
