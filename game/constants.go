package game

type CellStatus int
type GameStatus int

const (
	Covered CellStatus = iota
	Revealed
	Flagged
	Exploded
)

func (status CellStatus) String() string {
	switch status {
	case Covered:
		return "covered"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Exploded:
		return "exploded"
	default:
		return "unknown"
	}
}

const (
	Playing GameStatus = iota
	Won
	Lost
)

func (status GameStatus) String() string {
	switch status {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// IsOver reports whether the game has reached a terminal status
func (status GameStatus) IsOver() bool {
	return status == Won || status == Lost
}
