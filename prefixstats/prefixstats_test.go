package prefixstats_test

import (
	"testing"

	"github.com/katalvlaran/pelt/accum"
	"github.com/katalvlaran/pelt/prefixstats"
	"github.com/katalvlaran/pelt/signal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestBuild_WithoutMoments(t *testing.T) {
	t.Parallel()

	sig, err := signal.FromFlat([]float64{1, 2, 3})
	require.NoError(t, err)

	st := prefixstats.Build(sig, accum.Naive, false)
	require.False(t, st.HasMoments())
	require.Same(t, sig, st.Signal())
}

func TestBuild_SumAndSumSq(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1}, {2}, {3}, {4}}
	sig, err := signal.FromRows(rows)
	require.NoError(t, err)

	st := prefixstats.Build(sig, accum.Naive, true)
	require.True(t, st.HasMoments())

	require.Equal(t, floats.Sum([]float64{1, 2, 3, 4}), st.Sum(0, 4, 0))
	require.Equal(t, 1.0+4.0+9.0+16.0, st.SumSq(0, 4, 0))
	require.Equal(t, 2.5, st.Mean(0, 4, 0))

	// partial range
	require.Equal(t, 5.0, st.Sum(1, 3, 0)) // 2+3
	require.Equal(t, 13.0, st.SumSq(1, 3, 0))
}

func TestBuild_NaiveVsKahan_AgreeOnWellConditionedSignals(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{0.1}, {0.2}, {0.3}, {0.4}, {0.5}}
	sig, err := signal.FromRows(rows)
	require.NoError(t, err)

	naive := prefixstats.Build(sig, accum.Naive, true)
	kahan := prefixstats.Build(sig, accum.Kahan, true)

	require.InDelta(t, naive.Sum(0, 5, 0), kahan.Sum(0, 5, 0), 1e-12)
}

func TestBuild_MultiDimensional(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	sig, err := signal.FromRows(rows)
	require.NoError(t, err)

	st := prefixstats.Build(sig, accum.Naive, true)
	require.Equal(t, 6.0, st.Sum(0, 3, 0))
	require.Equal(t, 60.0, st.Sum(0, 3, 1))
}
