package grid

// ShortestDistance returns the number of moves on a shortest 4-connected walk
// from one cell to another that avoids Barrier cells, and whether any such
// walk exists. It reads classifications directly and ignores neighbour lists,
// so it is usable as an independent check on a search result.
//
// A Barrier at either end makes the pair unreachable unless from == to.
//
// Time:   O(N²).
// Memory: O(N²) for the distance table and queue.
func (g *Grid) ShortestDistance(from, to Position) (int, bool) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return 0, false
	}
	if from == to {
		return 0, true
	}
	if g.cells[from.Row][from.Col].state == Barrier {
		return 0, false
	}

	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	src := g.Index(from)
	dist[src] = 0
	queue := []int{src}
	target := g.Index(to)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		up := g.At(u).pos
		for _, d := range neighborOffsets {
			vp := Position{Row: up.Row + d[0], Col: up.Col + d[1]}
			if !g.InBounds(vp) || g.cells[vp.Row][vp.Col].state == Barrier {
				continue
			}
			v := g.Index(vp)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			if v == target {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}

	return 0, false
}
