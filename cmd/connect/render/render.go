// Package render draws a board as an image.
package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/connect-four/cmd/connect/game"
	"github.com/fogleman/gg"
)

// Geometry of the image in pixels. The top square row is left for the piece
// waiting to be dropped.
const (
	SquareSize = 100
	Margin     = 20
	Radius     = 45
	Width      = game.Cols*SquareSize + 2*Margin
	Height     = (game.Rows+1)*SquareSize + 2*Margin
)

// Center returns the pixel center of the cell at the specified row and
// column. Row 0 is drawn at the bottom.
func Center(row int, col int) (float64, float64) {
	x := Margin + col*SquareSize + SquareSize/2
	y := Height - Margin - row*SquareSize - SquareSize/2

	return float64(x), float64(y)
}

// PNG draws the board and returns it encoded as a PNG.
func PNG(state game.BoardState) ([]byte, error) {
	dc := gg.NewContext(Width, Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// -------------------------------------------------------------------------
	// Board with empty holes

	dc.SetRGB(0, 0, 1)
	dc.DrawRectangle(Margin, Margin+SquareSize, game.Cols*SquareSize, game.Rows*SquareSize)
	dc.Fill()

	for row := range game.Rows {
		for col := range game.Cols {
			x, y := Center(row, col)

			setPlayerColor(dc, state.Cells[row][col])
			dc.DrawCircle(x, y, Radius)
			dc.Fill()
		}
	}

	// -------------------------------------------------------------------------
	// Piece waiting to be dropped

	if state.Screen == game.ScreenPlaying {
		x, _ := Center(0, game.Cols/2)

		setPlayerColor(dc, state.Turn)
		dc.DrawCircle(x, Margin+SquareSize/2, Radius)
		dc.Fill()
	}

	// -------------------------------------------------------------------------
	// Ring around the winning line

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(4)
	for _, p := range state.WinningLine {
		x, y := Center(p.Row, p.Column)
		dc.DrawCircle(x, y, Radius-2)
		dc.Stroke()
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return b.Bytes(), nil
}

// Save writes the board as a PNG file named after the specified name in the
// folder, which is created if needed. The path of the file is returned.
func Save(dir string, name string, state game.BoardState) (string, error) {
	data, err := PNG(state)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create folder: %w", err)
	}

	path := filepath.Join(dir, name+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path, nil
}

func setPlayerColor(dc *gg.Context, p game.Player) {
	switch p {
	case game.Players.Red:
		dc.SetRGB(1, 0, 0)
	case game.Players.Yellow:
		dc.SetRGB(1, 1, 0)
	default:
		dc.SetRGB(1, 1, 1)
	}
}
