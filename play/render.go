package play

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/sweeper/game"
)

// Render draws the mine counter, the win/loss banner and the board as text.
// Once the game is lost, unflagged mines show as O and wrong flags as X.
func Render(w io.Writer, g *game.Game) error {
	board := g.Board()
	lost := g.Status() == game.Lost

	var out strings.Builder
	fmt.Fprintf(&out, "%03d", g.MinesLeft())
	switch g.Status() {
	case game.Won:
		out.WriteString("   WIN!")
	case game.Lost:
		out.WriteString("   LOSE :(")
	}
	out.WriteString("\n    ")

	for col := 0; col < board.Cols(); col++ {
		out.WriteByte(byte('0' + col%10))
	}
	out.WriteByte('\n')

	for row := 0; row < board.Rows(); row++ {
		fmt.Fprintf(&out, "%3d ", row)
		for col := 0; col < board.Cols(); col++ {
			cell, _ := board.CellAt(row, col)
			out.WriteByte(glyph(cell, lost))
		}
		out.WriteByte('\n')
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func glyph(cell game.Cell, lost bool) byte {
	switch cell.Status {
	case game.Exploded:
		return '*'
	case game.Revealed:
		if cell.NeighborBombs == 0 {
			return '.'
		}
		return byte('0' + cell.NeighborBombs)
	case game.Flagged:
		if lost && !cell.HasBomb {
			return 'X'
		}
		return 'F'
	default:
		if lost && cell.HasBomb {
			return 'O'
		}
		return '#'
	}
}
