package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_NewBoardEmpty(t *testing.T) {
	b := NewBoard()

	for row := range Rows {
		for col := range Cols {
			require.True(t, b.Cell(row, col).IsZero(), "row %d col %d", row, col)
		}
	}

	require.False(t, b.Full())
}

func Test_IsColumnPlayable(t *testing.T) {
	b := NewBoard()

	for col := range Cols {
		playable, err := b.IsColumnPlayable(col)
		require.NoError(t, err)
		require.True(t, playable)
	}

	for _, col := range []int{-1, Cols, 100} {
		_, err := b.IsColumnPlayable(col)
		require.ErrorIs(t, err, ErrInvalidColumn)

		var ce *ColumnError
		require.True(t, errors.As(err, &ce))
		require.Equal(t, col, ce.Column)
		require.False(t, ce.Full)
	}
}

func Test_Gravity(t *testing.T) {
	b := NewBoard()
	const col = 2

	prev := -1
	for i := range Rows {
		row, ok := b.FindOpenRow(col)
		require.True(t, ok, "drop %d", i)
		require.Greater(t, row, prev)
		require.Equal(t, i, row)

		b.PlacePiece(row, col, Players.Red)
		prev = row
	}

	_, ok := b.FindOpenRow(col)
	require.False(t, ok)

	playable, err := b.IsColumnPlayable(col)
	require.NoError(t, err)
	require.False(t, playable)
}

func Test_FindOpenRowOutOfRange(t *testing.T) {
	b := NewBoard()

	_, ok := b.FindOpenRow(-1)
	require.False(t, ok)

	_, ok = b.FindOpenRow(Cols)
	require.False(t, ok)
}

func Test_Full(t *testing.T) {
	b := NewBoard()

	for col := range Cols {
		for row := range Rows {
			b.PlacePiece(row, col, Players.Yellow)
		}
	}

	require.True(t, b.Full())
}
