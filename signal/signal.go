package signal

// Signal is an immutable n×d matrix view: n samples (rows), d dimensions
// (columns), d ≥ 1. It is constructed once per predict call and read many
// times; nothing in this package ever mutates rows after construction.
type Signal struct {
	rows [][]float64
	flat []float64 // set instead of rows when the signal was built from FromFlat
	n, d int
}

// FromRows builds a Signal from an n×d row-major matrix. Every row must
// carry exactly the same number of columns. An empty rows slice yields
// ErrEmptySignal; a ragged matrix yields ErrInconsistentDimensions.
//
// FromRows does not copy rows; the caller must not mutate the slices it
// passes in for the lifetime of the returned Signal.
func FromRows(rows [][]float64) (*Signal, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptySignal
	}

	d := len(rows[0])
	if d == 0 {
		return nil, ErrEmptySignal
	}
	for _, row := range rows[1:] {
		if len(row) != d {
			return nil, ErrInconsistentDimensions
		}
	}

	return &Signal{rows: rows, n: n, d: d}, nil
}

// FromFlat builds a one-dimensional (d=1) Signal from a plain slice of
// samples. It is sugar for FromRows with each value wrapped in its own
// row, avoiding an upfront allocation of n single-element slices by
// indexing into a shared backing array at query time.
func FromFlat(values []float64) (*Signal, error) {
	if len(values) == 0 {
		return nil, ErrEmptySignal
	}

	return &Signal{rows: nil, n: len(values), d: 1, flat: values}, nil
}

// N reports the number of samples (rows).
func (s *Signal) N() int { return s.n }

// D reports the number of dimensions (columns).
func (s *Signal) D() int { return s.d }

// At returns x[i][j]. It does not bounds-check; callers (prefixstats,
// costfn) are expected to stay within [0, N) × [0, D), which PeltEngine
// guarantees by construction of its candidate set.
func (s *Signal) At(i, j int) float64 {
	if s.flat != nil {
		return s.flat[i]
	}

	return s.rows[i][j]
}
