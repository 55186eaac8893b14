package astar

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFrontier_TieBreak checks that equal f values pop in insertion order.
func TestFrontier_TieBreak(t *testing.T) {
	var q frontier
	heap.Init(&q)
	for seq, f := range []int{5, 3, 3, 5, 1} {
		heap.Push(&q, &entry{f: f, seq: seq, index: seq})
	}

	var order []int
	for q.Len() > 0 {
		order = append(order, heap.Pop(&q).(*entry).index)
	}
	assert.Equal(t, []int{4, 1, 2, 0, 3}, order)
}

// TestFrontier_Interleaved drains interleaved pushes in (f, seq) order.
func TestFrontier_Interleaved(t *testing.T) {
	var q frontier
	heap.Init(&q)
	heap.Push(&q, &entry{f: 4, seq: 0, index: 0})
	heap.Push(&q, &entry{f: 6, seq: 1, index: 1})

	first := heap.Pop(&q).(*entry)
	require.Equal(t, 0, first.index)

	heap.Push(&q, &entry{f: 6, seq: 2, index: 2})
	heap.Push(&q, &entry{f: 4, seq: 3, index: 3})

	var order []int
	for q.Len() > 0 {
		order = append(order, heap.Pop(&q).(*entry).index)
	}
	assert.Equal(t, []int{3, 1, 2}, order)
}
