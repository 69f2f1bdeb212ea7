package game

import "fmt"

type Action int

const (
	Reveal Action = iota
	Flag
	Chord
)

func (action Action) String() string {
	switch action {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	default:
		return fmt.Sprintf("Action(%d)", int(action))
	}
}

// Move is a single player intent against a cell position
type Move struct {
	Action   Action
	Row, Col int
}

func (move Move) String() string {
	return fmt.Sprintf("%s(%d, %d)", move.Action, move.Row, move.Col)
}

func (cell Cell) Reveal() Move {
	return Move{Action: Reveal, Row: cell.Row, Col: cell.Col}
}

func (cell Cell) Flag() Move {
	return Move{Action: Flag, Row: cell.Row, Col: cell.Col}
}

func (cell Cell) Chord() Move {
	return Move{Action: Chord, Row: cell.Row, Col: cell.Col}
}

// Apply dispatches move to the matching controller operation
func (game *Game) Apply(move Move) (*Game, error) {
	cell := Cell{Row: move.Row, Col: move.Col}
	switch move.Action {
	case Reveal:
		return game.RevealCell(cell)
	case Flag:
		return game.FlagCell(cell)
	case Chord:
		return game.ChordCell(cell)
	default:
		return nil, fmt.Errorf("unknown action %v", move.Action)
	}
}

// Director is an automated player
type Director interface {
	// Next picks the move to play on game. ok is false when the director has
	// nothing left to suggest.
	Next(game *Game) (move Move, ok bool)
}
