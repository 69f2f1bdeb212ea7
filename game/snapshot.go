package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Snapshot is the on-disk form of a game. Each board row is one line of cell
// codes: # covered, . revealed, f flagged, O covered mine, F flagged mine,
// * exploded mine.
type Snapshot struct {
	Status          string `yaml:"status"`
	SerializedBoard string `yaml:"board,flow"`
}

func (game *Game) Snapshot() *Snapshot {
	lines := make([]string, game.board.rows)
	for row, cells := range game.board.cells {
		line := make([]byte, len(cells))
		for col, cell := range cells {
			line[col] = cell.serialize()
		}
		lines[row] = string(line)
	}

	return &Snapshot{
		Status:          game.status.String(),
		SerializedBoard: strings.Join(lines, "\n"),
	}
}

func (snapshot *Snapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Game rebuilds the snapshotted game, recomputing neighbor counts. With fresh
// set, every cell is covered again and the game restarts in Playing.
func (snapshot *Snapshot) Game(fresh bool) (*Game, error) {
	text := strings.TrimRight(snapshot.SerializedBoard, "\n")
	if text == "" {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty board")
	}
	rows := strings.Split(text, "\n")
	if len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidSnapshot, "empty first row")
	}

	board := &Board{
		rows:  len(rows),
		cols:  len(rows[0]),
		cells: make([][]Cell, len(rows)),
	}

	numBombs := 0
	for row, line := range rows {
		if len(line) != board.cols {
			return nil, errors.Wrapf(ErrInvalidSnapshot,
				"row %d has %d cells, expected %d", row, len(line), board.cols)
		}

		board.cells[row] = make([]Cell, board.cols)
		for col, c := range line {
			status, hasBomb, ok := deserializeCell(c)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown cell code %q at (%d, %d)", c, row, col)
			}
			if fresh {
				status = Covered
			}
			if hasBomb {
				numBombs++
			}
			board.cells[row][col] = Cell{Row: row, Col: col, Status: status, HasBomb: hasBomb}
		}
	}
	board.countNeighborBombs()

	status := Playing
	if !fresh {
		var err error
		if status, err = parseGameStatus(snapshot.Status); err != nil {
			return nil, err
		}
	}

	options := GameOptions{Rows: board.rows, Cols: board.cols, Bombs: numBombs}
	return newGame(board, options, status), nil
}

func parseGameStatus(s string) (GameStatus, error) {
	switch s {
	case "", Playing.String():
		return Playing, nil
	case Won.String():
		return Won, nil
	case Lost.String():
		return Lost, nil
	}
	return Playing, errors.Wrapf(ErrInvalidSnapshot, "unknown game status %q", s)
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "decoding snapshot")
	}
	return &snapshot, nil
}
