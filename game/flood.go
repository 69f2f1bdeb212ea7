package game

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/sweeper/util/collections"
)

// reveal uncovers pos and floods outward from every zero-neighbor cell it
// reaches. A cell with no neighboring mines has no mined neighbors, so only the
// starting cell can explode.
func (t *transition) reveal(start position) {
	if t.status != Playing {
		return
	}

	board := t.edit.base
	visited := make(collections.Set[int])
	var queue deque.Deque

	visited.Add(board.linearIndex(start.row, start.col))
	queue.PushBack(start)

	for queue.Len() > 0 {
		pos := queue.PopFront().(position)
		cell := t.edit.at(pos)
		if cell.Status != Covered {
			continue
		}

		if cell.HasBomb {
			t.setStatus(pos, Exploded)
			t.status = Lost
			return
		}

		t.setStatus(pos, Revealed)
		if t.coveredSafe == 0 {
			t.status = Won
			return
		}

		if cell.NeighborBombs == 0 {
			for _, neighbor := range board.neighborPositions(pos.row, pos.col) {
				idx := board.linearIndex(neighbor.row, neighbor.col)
				if visited.Contains(idx) {
					continue
				}
				visited.Add(idx)
				queue.PushBack(neighbor)
			}
		}
	}
}
