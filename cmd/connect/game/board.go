package game

// Dimensions of the board.
const (
	Rows = 6
	Cols = 7
)

// Board represents the grid of cells. Row 0 is the bottom row.
type Board struct {
	cells [Rows][Cols]Player
}

// NewBoard constructs an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Position identifies a cell on the board.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// IsColumnPlayable reports if the top row of the column is still empty.
func (b *Board) IsColumnPlayable(col int) (bool, error) {
	if col < 0 || col >= Cols {
		return false, &ColumnError{Column: col}
	}

	return b.cells[Rows-1][col].IsZero(), nil
}

// FindOpenRow returns the lowest empty row in the column. The bool is false
// when the column is full or out of range.
func (b *Board) FindOpenRow(col int) (int, bool) {
	if col < 0 || col >= Cols {
		return 0, false
	}

	for row := range Rows {
		if b.cells[row][col].IsZero() {
			return row, true
		}
	}

	return 0, false
}

// PlacePiece sets the cell to the player. The caller is expected to have
// used IsColumnPlayable and FindOpenRow to pick the cell.
func (b *Board) PlacePiece(row int, col int, player Player) {
	b.cells[row][col] = player
}

// Cell returns the player occupying the cell, the zero value when empty.
func (b *Board) Cell(row int, col int) Player {
	return b.cells[row][col]
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]Player {
	return b.cells
}

// Full reports if every column is full.
func (b *Board) Full() bool {
	for col := range Cols {
		if b.cells[Rows-1][col].IsZero() {
			return false
		}
	}

	return true
}
