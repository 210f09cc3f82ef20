// Package costfn implements the two segment-cost functions PELT scores
// candidate splits with: L2 (sum of squared deviations from the
// per-segment mean, a closed form over prefixstats.Stats) and L1 (sum of
// absolute deviations from the per-segment median, computed from raw
// samples via quickselect).
//
// Both costs are sums over dimensions of a per-dimension cost. L2 is O(d)
// per query; L1 is O(d·L) expected for a segment of length L, and does
// not allocate given the Scratch buffer is reused across the whole
// predict call.
package costfn
