package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/sweeper/util/collections"
)

var Log = logrus.New()

// Game is an immutable snapshot of a play-through. Every accepted move returns
// a new *Game; moves that change nothing return the receiver itself.
type Game struct {
	board   *Board
	options GameOptions
	status  GameStatus

	coveredSafe int
	numFlags    int
}

// CreateGame builds a fresh board in the Playing state. Mines are drawn from
// source without replacement; a nil source falls back to a time-seeded generator.
func CreateGame(options GameOptions, source MineSource) (*Game, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if source == nil {
		source = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := &Board{
		rows:  options.Rows,
		cols:  options.Cols,
		cells: make([][]Cell, options.Rows),
	}

	numCells := board.NumCells()
	numBombs := options.EffectiveBombs()
	mines := make(collections.Set[int], numBombs)
	for len(mines) < numBombs {
		mines.Add(source.Intn(numCells))
	}

	for row := 0; row < board.rows; row++ {
		board.cells[row] = make([]Cell, board.cols)
		for col := 0; col < board.cols; col++ {
			board.cells[row][col] = Cell{
				Row:     row,
				Col:     col,
				Status:  Covered,
				HasBomb: mines.Contains(board.linearIndex(row, col)),
			}
		}
	}
	board.countNeighborBombs()

	Log.WithFields(logrus.Fields{
		"rows":  options.Rows,
		"cols":  options.Cols,
		"bombs": numBombs,
	}).Debug("created game")

	return newGame(board, options, Playing), nil
}

func newGame(board *Board, options GameOptions, status GameStatus) *Game {
	game := &Game{
		board:   board,
		options: options,
		status:  status,
	}
	for _, row := range board.cells {
		for _, cell := range row {
			if cell.isCoveredSafe() {
				game.coveredSafe++
			}
			if cell.IsFlagged() {
				game.numFlags++
			}
		}
	}
	return game
}

func (board *Board) countNeighborBombs() {
	for row := range board.cells {
		for col := range board.cells[row] {
			count := 0
			for _, pos := range board.neighborPositions(row, col) {
				if board.cells[pos.row][pos.col].HasBomb {
					count++
				}
			}
			board.cells[row][col].NeighborBombs = count
		}
	}
}

func (game *Game) Board() *Board {
	return game.board
}

func (game *Game) Options() GameOptions {
	return game.options
}

func (game *Game) Status() GameStatus {
	return game.status
}

// CoveredSafeCells is the number of mine-free cells still Covered
func (game *Game) CoveredSafeCells() int {
	return game.coveredSafe
}

func (game *Game) FlagCount() int {
	return game.numFlags
}

// MinesLeft is the mine count minus placed flags, as shown on a classic counter
func (game *Game) MinesLeft() int {
	return game.options.EffectiveBombs() - game.numFlags
}

func (game *Game) CellAt(row, col int) (Cell, bool) {
	return game.board.CellAt(row, col)
}

func (game *Game) canPlay() bool {
	return game.status == Playing
}

func (game *Game) resolve(cell Cell) (position, error) {
	if !game.board.InBounds(cell.Row, cell.Col) {
		return position{}, errors.Wrapf(ErrCellOutOfBounds,
			"%v on a %dx%d board", cell, game.board.rows, game.board.cols)
	}
	return position{cell.Row, cell.Col}, nil
}

// RevealCell uncovers a cell, cascading across zero-neighbor regions. Revealing
// a mine loses the game; uncovering the last safe cell wins it. Flagged and
// already revealed cells are left alone, as is any finished game.
//
// Only cell.Row and cell.Col are read; the board holds the authoritative status.
func (game *Game) RevealCell(cell Cell) (*Game, error) {
	pos, err := game.resolve(cell)
	if err != nil {
		return nil, err
	}
	if !game.canPlay() {
		return game, nil
	}

	logMove(Reveal, pos)
	t := game.begin()
	t.reveal(pos)
	return t.commit(), nil
}

// RevealNeighborCells reveals each in-bounds neighbor of cell in turn
func (game *Game) RevealNeighborCells(cell Cell) (*Game, error) {
	pos, err := game.resolve(cell)
	if err != nil {
		return nil, err
	}
	if !game.canPlay() {
		return game, nil
	}

	t := game.begin()
	for _, neighbor := range game.board.neighborPositions(pos.row, pos.col) {
		t.reveal(neighbor)
	}
	return t.commit(), nil
}

// FlagCell toggles the flag on a covered cell
func (game *Game) FlagCell(cell Cell) (*Game, error) {
	pos, err := game.resolve(cell)
	if err != nil {
		return nil, err
	}
	if !game.canPlay() {
		return game, nil
	}

	t := game.begin()
	switch t.edit.at(pos).Status {
	case Covered:
		logMove(Flag, pos)
		t.setStatus(pos, Flagged)
	case Flagged:
		logMove(Flag, pos)
		t.setStatus(pos, Covered)
	}
	return t.commit(), nil
}

// ChordCell reveals every unflagged neighbor of a revealed cell, provided the
// number of flagged neighbors matches its mine count. A wrong flag loses.
func (game *Game) ChordCell(cell Cell) (*Game, error) {
	pos, err := game.resolve(cell)
	if err != nil {
		return nil, err
	}
	if !game.canPlay() {
		return game, nil
	}

	target := game.board.cells[pos.row][pos.col]
	if target.Status != Revealed {
		return game, nil
	}

	neighbors := game.board.neighborPositions(pos.row, pos.col)
	numFlagged := 0
	for _, neighbor := range neighbors {
		if game.board.cells[neighbor.row][neighbor.col].IsFlagged() {
			numFlagged++
		}
	}
	if numFlagged != target.NeighborBombs {
		return game, nil
	}

	logMove(Chord, pos)
	t := game.begin()
	for _, neighbor := range neighbors {
		t.reveal(neighbor)
	}
	return t.commit(), nil
}

func logMove(action Action, pos position) {
	Log.WithFields(logrus.Fields{
		"action": action,
		"row":    pos.row,
		"col":    pos.col,
	}).Debug("move")
}

// transition accumulates the effects of one move on top of an existing game
type transition struct {
	game    *Game
	edit    *boardEditor
	status  GameStatus
	changed bool

	coveredSafe int
	numFlags    int
}

func (game *Game) begin() *transition {
	return &transition{
		game:        game,
		edit:        game.board.edit(),
		status:      game.status,
		coveredSafe: game.coveredSafe,
		numFlags:    game.numFlags,
	}
}

func (t *transition) setStatus(pos position, status CellStatus) {
	cell := t.edit.at(pos)
	if cell.Status == status {
		return
	}

	if cell.isCoveredSafe() {
		t.coveredSafe--
	}
	if cell.IsFlagged() {
		t.numFlags--
	}

	t.edit.setStatus(pos, status)
	cell.Status = status

	if cell.isCoveredSafe() {
		t.coveredSafe++
	}
	if cell.IsFlagged() {
		t.numFlags++
	}
	t.changed = true
}

func (t *transition) commit() *Game {
	if !t.changed {
		return t.game
	}

	if t.status != t.game.status {
		Log.WithFields(logrus.Fields{
			"rows":  t.game.options.Rows,
			"cols":  t.game.options.Cols,
			"bombs": t.game.options.EffectiveBombs(),
		}).Infof("game %s", t.status)
	}

	return &Game{
		board:       t.edit.board(),
		options:     t.game.options,
		status:      t.status,
		coveredSafe: t.coveredSafe,
		numFlags:    t.numFlags,
	}
}
