package pelt

// activeSet is the candidate-start set R: an append-mostly buffer kept
// in ascending order. Pruning compacts it in place with a write index
// rather than removing elements one at a time, avoiding a linked
// structure for what is, in practice, a small, cache-friendly slice.
type activeSet struct {
	items []int
}

// newActiveSet allocates a buffer with capacity for capHint candidates;
// R never exceeds |K|+1 entries over a predict call.
func newActiveSet(capHint int) *activeSet {
	return &activeSet{items: make([]int, 0, capHint)}
}

// append adds k to the end of R. Callers only append values larger than
// every existing entry, which is what keeps R sorted ascending without
// an explicit sort.
func (r *activeSet) append(k int) {
	r.items = append(r.items, k)
}

// view returns R's current contents in ascending order. The returned
// slice aliases activeSet's backing array and must not be retained past
// the next prune/append call.
func (r *activeSet) view() []int {
	return r.items
}

// prune removes every s for which dominated(s) is true, compacting the
// remainder in place in a single left-to-right pass.
func (r *activeSet) prune(dominated func(s int) bool) {
	w := 0
	for _, s := range r.items {
		if !dominated(s) {
			r.items[w] = s
			w++
		}
	}
	r.items = r.items[:w]
}
