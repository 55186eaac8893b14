package astar

// entry is a frontier slot for one cell.
// seq is the insertion counter; it only matters when f values tie.
type entry struct {
	f     int // g + h when the cell was pushed
	seq   int // insertion order, 0 for the start cell
	index int // row-major cell index
}

// frontier is a min-heap of *entry ordered by f, then seq.
// Keys are never lowered in place: a cell improved while queued keeps the
// key it was pushed with.
type frontier []*entry

// Len returns the number of entries in the heap.
func (q frontier) Len() int { return len(q) }

// Less orders by f ascending and, for equal f, by earlier insertion.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x; called by heap.Push with an *entry.
func (q *frontier) Push(x interface{}) {
	*q = append(*q, x.(*entry))
}

// Pop removes the last element; called by heap.Pop.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return e
}
