package random

import (
	"math/rand"

	"github.com/they4kman/sweeper/game"
)

// Director reveals a uniformly chosen covered, unflagged cell each turn
type Director struct {
	rand *rand.Rand
}

func New(seed int64) *Director {
	return &Director{rand: rand.New(rand.NewSource(seed))}
}

func (director *Director) Next(g *game.Game) (game.Move, bool) {
	if g.Status() != game.Playing {
		return game.Move{}, false
	}

	candidates := Candidates(g)
	if len(candidates) == 0 {
		return game.Move{}, false
	}

	return candidates[director.rand.Intn(len(candidates))].Reveal(), true
}

// Pick returns one of cells at random
func (director *Director) Pick(cells []game.Cell) game.Cell {
	return cells[director.rand.Intn(len(cells))]
}

// Candidates lists the cells a reveal could still change, in row-major order
func Candidates(g *game.Game) []game.Cell {
	var candidates []game.Cell
	for _, cell := range g.Board().Cells() {
		if cell.IsCovered() {
			candidates = append(candidates, cell)
		}
	}
	return candidates
}
