package game

// direction is the step taken from an anchor cell to walk a run.
type direction struct {
	dRow int
	dCol int
}

// The four directions a run of four can take. Anchors are always the
// leftmost cell of the run, the bottom one for vertical runs.
var directions = []direction{
	{dRow: 0, dCol: 1},  // horizontal
	{dRow: 1, dCol: 0},  // vertical
	{dRow: 1, dCol: 1},  // ascending diagonal
	{dRow: -1, dCol: 1}, // descending diagonal
}

const runLength = 4

// IsWinningMove scans the entire board and reports if the player has four
// pieces in a row in any direction.
func IsWinningMove(b *Board, player Player) bool {
	_, found := WinningLine(b, player)
	return found
}

// WinningLine returns the cells of the first run of four found for the
// player.
func WinningLine(b *Board, player Player) ([]Position, bool) {
	if player.IsZero() {
		return nil, false
	}

	for _, d := range directions {

		// Limit the anchors so the whole run stays on the board.
		rowFrom, rowTo := 0, Rows
		switch {
		case d.dRow > 0:
			rowTo = Rows - (runLength - 1)
		case d.dRow < 0:
			rowFrom = runLength - 1
		}
		colTo := Cols - (runLength-1)*d.dCol

		for row := rowFrom; row < rowTo; row++ {
			for col := 0; col < colTo; col++ {
				if line, ok := runAt(b, player, row, col, d); ok {
					return line, true
				}
			}
		}
	}

	return nil, false
}

func runAt(b *Board, player Player, row int, col int, d direction) ([]Position, bool) {
	line := make([]Position, 0, runLength)

	for i := range runLength {
		r := row + i*d.dRow
		c := col + i*d.dCol

		if b.cells[r][c] != player {
			return nil, false
		}

		line = append(line, Position{Row: r, Column: c})
	}

	return line, true
}
