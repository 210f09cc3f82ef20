package accum_test

import (
	"fmt"

	"github.com/katalvlaran/pelt/accum"
)

// ExampleSum demonstrates Kahan summation keeping the small terms of a
// classic cancelling sequence.
func ExampleSum() {
	xs := []float64{1e16, 1.0, -1e16, 1.0}

	fmt.Printf("kahan=%.1f\n", accum.Sum(accum.Kahan, xs))
	// Output:
	// kahan=2.0
}
