package constraint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/they4kman/sweeper/game"
	"github.com/they4kman/sweeper/util/collections"
)

func layout(t *testing.T, rows ...string) *game.Game {
	t.Helper()
	snapshot := &game.Snapshot{SerializedBoard: strings.Join(rows, "\n")}
	g, err := snapshot.Game(false)
	require.NoError(t, err)
	return g
}

func TestFlagsForcedMine(t *testing.T) {
	g := layout(t,
		"O.",
		"..",
	)

	move, ok := New(1).Next(g)
	require.True(t, ok)
	assert.Equal(t, game.Move{Action: game.Flag, Row: 0, Col: 0}, move)
}

func TestChordsSatisfiedNumber(t *testing.T) {
	g := layout(t,
		"F.#",
		"..#",
		"###",
	)

	move, ok := New(1).Next(g)
	require.True(t, ok)
	assert.Equal(t, game.Move{Action: game.Chord, Row: 0, Col: 1}, move)

	next, err := g.Apply(move)
	require.NoError(t, err)
	assert.Equal(t, game.Revealed, mustCell(t, next, 0, 2).Status)
	assert.Equal(t, game.Revealed, mustCell(t, next, 1, 2).Status)
}

func TestDeriveSubsetObservation(t *testing.T) {
	a, b, c := coord{0, 0}, coord{0, 1}, coord{0, 2}
	observations := []*Observation{
		{numMines: 1, cells: collections.NewSet(a, b)},
		{numMines: 2, cells: collections.NewSet(a, b, c)},
	}

	derived := derive(observations)
	require.Len(t, derived, 1)
	assert.Equal(t, 1, derived[0].numMines)
	assert.True(t, derived[0].cells.Equal(collections.NewSet(c)))

	move, ok := actDeliberate(derived)
	require.True(t, ok)
	assert.Equal(t, game.Move{Action: game.Flag, Row: 0, Col: 2}, move)
}

func TestLowestProbability(t *testing.T) {
	observations := []*Observation{
		{numMines: 1, cells: collections.NewSet(coord{0, 0}, coord{0, 1})},
		{numMines: 1, cells: collections.NewSet(coord{2, 0}, coord{2, 1}, coord{2, 2}, coord{2, 3})},
	}

	move, ok := New(3).actLowestProbability(observations)
	require.True(t, ok)
	assert.Equal(t, game.Reveal, move.Action)
	assert.Equal(t, 2, move.Row)
}

func TestFirstMoveFallsBackToRandom(t *testing.T) {
	g, err := game.CreateGame(game.GameOptions{Rows: 5, Cols: 5, Bombs: 3}, game.NewFixedSource(0, 6, 12))
	require.NoError(t, err)

	move, ok := New(9).Next(g)
	require.True(t, ok)
	assert.Equal(t, game.Reveal, move.Action)
}

func TestPlaysToCompletion(t *testing.T) {
	g, err := game.CreateGame(game.GameOptions{Rows: 9, Cols: 9, Bombs: 10}, game.NewFixedSource(4, 13, 27, 35, 44, 52, 60, 71, 77, 80))
	require.NoError(t, err)

	director := New(5)
	for turns := 0; g.Status() == game.Playing; turns++ {
		require.Less(t, turns, 2*81)

		move, ok := director.Next(g)
		require.True(t, ok)
		g, err = g.Apply(move)
		require.NoError(t, err)
	}

	_, ok := director.Next(g)
	assert.False(t, ok)
}

func TestObservationString(t *testing.T) {
	origin := game.Cell{Row: 1, Col: 1}
	observation := Observation{
		origin:   &origin,
		numMines: 1,
		cells:    collections.NewSet(coord{0, 1}, coord{0, 0}),
	}
	assert.Equal(t, "Obs[  (1, 1), 1 ε (0, 0), (0, 1)]", observation.String())
}

func mustCell(t *testing.T, g *game.Game, row, col int) game.Cell {
	t.Helper()
	cell, ok := g.CellAt(row, col)
	require.True(t, ok)
	return cell
}
