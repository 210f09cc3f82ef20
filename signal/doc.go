// Package signal defines the read-only data model consumed by prefixstats,
// costfn and pelt: a row-major n×d matrix of float64 samples.
//
// A Signal is built once per predict call from caller-supplied data (either
// a flat one-dimensional slice, treated as d=1, or a slice of rows) and is
// never mutated afterwards. Construction validates that the signal is
// non-empty and that every row carries the same number of dimensions;
// all downstream components assume these invariants hold.
package signal
