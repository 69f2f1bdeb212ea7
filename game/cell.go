package game

import "fmt"

// Cell is a read-only view of a single board square. HasBomb and NeighborBombs
// are fixed when the board is created; only Status changes between games.
type Cell struct {
	Row, Col      int
	Status        CellStatus
	HasBomb       bool
	NeighborBombs int
}

func (cell Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.Row, cell.Col)
}

func (cell Cell) IsCovered() bool {
	return cell.Status == Covered
}

func (cell Cell) IsRevealed() bool {
	return cell.Status == Revealed || cell.Status == Exploded
}

func (cell Cell) IsFlagged() bool {
	return cell.Status == Flagged
}

// isCoveredSafe reports whether the cell still stands between the player and a win
func (cell Cell) isCoveredSafe() bool {
	return cell.Status == Covered && !cell.HasBomb
}

func (cell Cell) serialize() byte {
	switch {
	case cell.HasBomb:
		switch cell.Status {
		case Exploded:
			return '*'
		case Flagged:
			return 'F'
		default:
			return 'O'
		}
	case cell.Status == Flagged:
		return 'f'
	case cell.Status == Revealed:
		return '.'
	default:
		return '#'
	}
}

func deserializeCell(c rune) (status CellStatus, hasBomb bool, ok bool) {
	switch c {
	case '*':
		return Exploded, true, true
	case 'F':
		return Flagged, true, true
	case 'O':
		return Covered, true, true
	case 'f':
		return Flagged, false, true
	case '.':
		return Revealed, false, true
	case '#':
		return Covered, false, true
	default:
		return Covered, false, false
	}
}
