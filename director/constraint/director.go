package constraint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/they4kman/sweeper/director/random"
	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
)

type coord struct {
	row, col int
}

// Director plays moves it can prove safe from single numbers and pairs of
// overlapping numbers. When nothing is certain it reveals the cell with the
// lowest estimated mine probability, and on an untouched board a random one.
type Director struct {
	fallback *random.Director
}

func New(seed int64) *Director {
	return &Director{fallback: random.New(seed)}
}

// Observation records that numMines of cells hold mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[coord]
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, c := range sortedCoords(observation.cells) {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprintf("(%d, %d)", c.row, c.col))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.Row, observation.origin.Col)
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.cells))
}

func (director *Director) Next(g *game.Game) (game.Move, bool) {
	if g.Status() != game.Playing {
		return game.Move{}, false
	}

	observations := observe(g)

	if move, ok := actDeliberate(observations); ok {
		return move, true
	}
	if move, ok := actDeliberate(derive(observations)); ok {
		return move, true
	}
	if move, ok := director.actLowestProbability(observations); ok {
		return move, true
	}
	return director.fallback.Next(g)
}

// observe builds one observation per revealed number bordering covered cells
func observe(g *game.Game) []*Observation {
	board := g.Board()

	var observations []*Observation
	for _, cell := range board.Cells() {
		if cell.Status != game.Revealed || cell.NeighborBombs == 0 {
			continue
		}

		origin := cell
		observation := &Observation{
			origin:   &origin,
			numMines: cell.NeighborBombs,
			cells:    make(collections.Set[coord]),
		}
		for _, neighbor := range board.Neighbors(cell.Row, cell.Col) {
			switch neighbor.Status {
			case game.Flagged:
				observation.numMines--
			case game.Covered:
				observation.cells.Add(coord{neighbor.Row, neighbor.Col})
			}
		}

		if len(observation.cells) > 0 {
			observations = append(observations, observation)
		}
	}
	return observations
}

// derive splits observations wholly contained in another into the difference
func derive(observations []*Observation) []*Observation {
	var derived []*Observation
	for _, inner := range observations {
		for _, outer := range observations {
			if inner == outer {
				continue
			}
			if _, isSubset := inner.cells.IntersectionEx(outer.cells); !isSubset {
				continue
			}

			rest := outer.cells.Difference(inner.cells)
			if len(rest) == 0 {
				continue
			}
			derived = append(derived, &Observation{
				numMines: outer.numMines - inner.numMines,
				cells:    rest,
			})
		}
	}
	return derived
}

func actDeliberate(observations []*Observation) (game.Move, bool) {
	for _, observation := range observations {
		switch {
		case observation.numMines == len(observation.cells):
			c := sortedCoords(observation.cells)[0]
			return game.Move{Action: game.Flag, Row: c.row, Col: c.col}, true

		case observation.numMines == 0:
			if observation.origin != nil {
				return observation.origin.Chord(), true
			}
			c := sortedCoords(observation.cells)[0]
			return game.Move{Action: game.Reveal, Row: c.row, Col: c.col}, true
		}
	}
	return game.Move{}, false
}

func (director *Director) actLowestProbability(observations []*Observation) (game.Move, bool) {
	cellProbabilities := make(map[coord]float32)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for c := range observation.cells {
			if past, ok := cellProbabilities[c]; !ok || probability > past {
				cellProbabilities[c] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return game.Move{}, false
	}

	var lowest []game.Cell
	var lowestProbability float32 = 2
	for c, probability := range cellProbabilities {
		switch {
		case probability < lowestProbability:
			lowestProbability = probability
			lowest = []game.Cell{{Row: c.row, Col: c.col}}
		case probability == lowestProbability:
			lowest = append(lowest, game.Cell{Row: c.row, Col: c.col})
		}
	}

	sort.Slice(lowest, func(i, j int) bool {
		if lowest[i].Row != lowest[j].Row {
			return lowest[i].Row < lowest[j].Row
		}
		return lowest[i].Col < lowest[j].Col
	})
	return director.fallback.Pick(lowest).Reveal(), true
}

func sortedCoords(set collections.Set[coord]) []coord {
	coords := make([]coord, 0, len(set))
	for c := range set {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].row != coords[j].row {
			return coords[i].row < coords[j].row
		}
		return coords[i].col < coords[j].col
	})
	return coords
}
