// Package accum provides the two summation strategies PELT's prefix-sum
// machinery and L1 cost function are built on: a plain running total, and
// Kahan compensated summation for adversarial, nearly-cancelling inputs.
package accum
