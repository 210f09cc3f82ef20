package pelt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pelt/costfn"
	"github.com/katalvlaran/pelt/pelt"
)

func benchmarkPredict(b *testing.B, kind costfn.Kind, n int, parallel bool) {
	rng := rand.New(rand.NewSource(42))
	signal := make([]float64, n)
	mean := 0.0
	for i := range signal {
		if i%500 == 0 {
			mean = rng.Float64() * 10
		}
		signal[i] = mean + rng.NormFloat64()
	}

	engine := pelt.New(pelt.WithCostFn(kind), pelt.WithJump(5), pelt.WithParallel(parallel))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Predict1D(signal, 10.0); err != nil {
			b.Fatalf("Predict1D failed: %v", err)
		}
	}
}

func BenchmarkPredict_L2_Sequential(b *testing.B) { benchmarkPredict(b, costfn.L2, 2_000, false) }
func BenchmarkPredict_L2_Parallel(b *testing.B)   { benchmarkPredict(b, costfn.L2, 2_000, true) }
func BenchmarkPredict_L1_Sequential(b *testing.B) { benchmarkPredict(b, costfn.L1, 2_000, false) }
func BenchmarkPredict_L1_Parallel(b *testing.B)   { benchmarkPredict(b, costfn.L1, 2_000, true) }
