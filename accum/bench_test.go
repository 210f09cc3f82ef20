package accum_test

import (
	"testing"

	"github.com/katalvlaran/pelt/accum"
)

func benchmarkSum(b *testing.B, mode accum.Mode, n int) {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i%7) - 3.0
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = accum.Sum(mode, xs)
	}
}

func BenchmarkSum_NaiveSmall(b *testing.B) { benchmarkSum(b, accum.Naive, 1_000) }
func BenchmarkSum_KahanSmall(b *testing.B) { benchmarkSum(b, accum.Kahan, 1_000) }
func BenchmarkSum_NaiveLarge(b *testing.B) { benchmarkSum(b, accum.Naive, 100_000) }
func BenchmarkSum_KahanLarge(b *testing.B) { benchmarkSum(b, accum.Kahan, 100_000) }
