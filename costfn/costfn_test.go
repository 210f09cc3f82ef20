package costfn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// median is unexported; tested in-package alongside quickselect.

func TestMedian_Odd(t *testing.T) {
	t.Parallel()

	buf := []float64{5, 1, 3}
	require.Equal(t, 3.0, median(buf))
}

func TestMedian_Even(t *testing.T) {
	t.Parallel()

	buf := []float64{1, 2, 3, 4}
	require.Equal(t, 2.5, median(buf))
}

func TestMedian_Single(t *testing.T) {
	t.Parallel()

	require.Equal(t, 42.0, median([]float64{42}))
}

func TestMedian_Duplicates(t *testing.T) {
	t.Parallel()

	buf := []float64{2, 2, 2, 2, 2}
	require.Equal(t, 2.0, median(buf))
}

func TestMedian_AgreesWithSort(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		l := 1 + rng.Intn(40)
		buf := make([]float64, l)
		for i := range buf {
			buf[i] = rng.Float64()*200 - 100
		}
		want := sortedMedian(append([]float64(nil), buf...))
		got := median(buf)
		require.InDelta(t, want, got, 1e-9)
	}
}

// sortedMedian is a reference oracle: sort then average the two middle
// elements (or take the single middle element for odd length).
func sortedMedian(buf []float64) float64 {
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && buf[j-1] > buf[j]; j-- {
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
	l := len(buf)
	if l%2 == 1 {
		return buf[l/2]
	}

	return (buf[l/2-1] + buf[l/2]) / 2
}

func TestQuickselect_PartitionInvariant(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		l := 2 + rng.Intn(50)
		buf := make([]float64, l)
		for i := range buf {
			buf[i] = rng.Float64() * 1000
		}
		k := rng.Intn(l)
		quickselect(buf, k)

		for i := 0; i < k; i++ {
			require.LessOrEqual(t, buf[i], buf[k])
		}
		for i := k + 1; i < l; i++ {
			require.GreaterOrEqual(t, buf[i], buf[k])
		}
	}
}

func TestMedian_OutlierDoesNotShiftIt(t *testing.T) {
	t.Parallel()

	// 21 samples, all zero except one 100 in the middle: odd length, median stays 0,
	// so the outlier only contributes its own |100-0| deviation.
	buf := make([]float64, 21)
	buf[10] = 100
	require.Equal(t, 0.0, median(append([]float64(nil), buf...)))
}
