package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_WinningMoveEveryRun(t *testing.T) {
	for _, d := range directions {
		for row := range Rows {
			for col := range Cols {
				endRow := row + 3*d.dRow
				endCol := col + 3*d.dCol
				if endRow < 0 || endRow >= Rows || endCol >= Cols {
					continue
				}

				b := NewBoard()
				var want []Position
				for i := range 4 {
					p := Position{Row: row + i*d.dRow, Column: col + i*d.dCol}
					b.PlacePiece(p.Row, p.Column, Players.Red)
					want = append(want, p)
				}

				require.True(t, IsWinningMove(b, Players.Red), "dir %v anchor %d,%d", d, row, col)
				require.False(t, IsWinningMove(b, Players.Yellow), "dir %v anchor %d,%d", d, row, col)

				got, ok := WinningLine(b, Players.Red)
				require.True(t, ok)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("dir %v anchor %d,%d: line mismatch (-want +got):\n%s", d, row, col, diff)
				}
			}
		}
	}
}

func Test_NoWinWithThree(t *testing.T) {
	b := NewBoard()
	b.PlacePiece(0, 0, Players.Red)
	b.PlacePiece(0, 1, Players.Red)
	b.PlacePiece(0, 2, Players.Red)
	b.PlacePiece(0, 3, Players.Yellow)

	require.False(t, IsWinningMove(b, Players.Red))
	require.False(t, IsWinningMove(b, Players.Yellow))
}

func Test_NoWinAcrossEdges(t *testing.T) {
	b := NewBoard()

	// Two on the right edge of row 0 and two on the left edge of row 1 would
	// be four in a row on a flattened grid.
	b.PlacePiece(0, 5, Players.Red)
	b.PlacePiece(0, 6, Players.Red)
	b.PlacePiece(1, 0, Players.Red)
	b.PlacePiece(1, 1, Players.Red)

	require.False(t, IsWinningMove(b, Players.Red))
}

func Test_EmptyNeverWins(t *testing.T) {
	require.False(t, IsWinningMove(NewBoard(), Player{}))
}

func Test_VerticalScenario(t *testing.T) {
	b := NewBoard()

	for range 4 {
		row, ok := b.FindOpenRow(3)
		require.True(t, ok)
		b.PlacePiece(row, 3, Players.Red)
	}

	require.True(t, IsWinningMove(b, Players.Red))
}

func Test_HorizontalScenario(t *testing.T) {
	b := NewBoard()

	for col := range 4 {
		row, ok := b.FindOpenRow(col)
		require.True(t, ok)
		require.Equal(t, 0, row)
		b.PlacePiece(row, col, Players.Red)
	}

	require.True(t, IsWinningMove(b, Players.Red))
}
