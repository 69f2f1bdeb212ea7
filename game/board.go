package game

// Board is an immutable rows × cols grid of cells. Boards returned by moves
// share every row the move did not touch with the board they were derived from.
type Board struct {
	rows, cols int
	cells      [][]Cell
}

type position struct {
	row, col int
}

func (board *Board) Rows() int {
	return board.rows
}

func (board *Board) Cols() int {
	return board.cols
}

func (board *Board) NumCells() int {
	return board.rows * board.cols
}

func (board *Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.rows && col < board.cols
}

func (board *Board) CellAt(row, col int) (Cell, bool) {
	if board.InBounds(row, col) {
		return board.cells[row][col], true
	}
	return Cell{}, false
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []Cell {
	out := make([]Cell, 0, board.NumCells())
	for _, row := range board.cells {
		out = append(out, row...)
	}
	return out
}

// Neighbors returns the up to 8 cells adjacent to (row, col)
func (board *Board) Neighbors(row, col int) []Cell {
	positions := board.neighborPositions(row, col)
	out := make([]Cell, len(positions))
	for i, pos := range positions {
		out[i] = board.cells[pos.row][pos.col]
	}
	return out
}

// linearIndex encodes (row, col) as row*cols + col
func (board *Board) linearIndex(row, col int) int {
	return row*board.cols + col
}

func (board *Board) neighborPositions(row, col int) []position {
	out := make([]position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if board.InBounds(row+dr, col+dc) {
				out = append(out, position{row + dr, col + dc})
			}
		}
	}
	return out
}

// boardEditor builds the successor of a board during a single move. The outer
// slice is copied up front and each row at most once, on its first write.
type boardEditor struct {
	base   *Board
	cells  [][]Cell
	copied []bool
}

func (board *Board) edit() *boardEditor {
	cells := make([][]Cell, len(board.cells))
	copy(cells, board.cells)
	return &boardEditor{
		base:   board,
		cells:  cells,
		copied: make([]bool, len(board.cells)),
	}
}

func (editor *boardEditor) at(pos position) Cell {
	return editor.cells[pos.row][pos.col]
}

func (editor *boardEditor) setStatus(pos position, status CellStatus) {
	if !editor.copied[pos.row] {
		row := make([]Cell, len(editor.cells[pos.row]))
		copy(row, editor.cells[pos.row])
		editor.cells[pos.row] = row
		editor.copied[pos.row] = true
	}
	editor.cells[pos.row][pos.col].Status = status
}

// board finalizes the edit. The editor must not be written to afterwards.
func (editor *boardEditor) board() *Board {
	return &Board{
		rows:  editor.base.rows,
		cols:  editor.base.cols,
		cells: editor.cells,
	}
}
