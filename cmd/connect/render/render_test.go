package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/ardanlabs/connect-four/cmd/connect/game"
	"github.com/ardanlabs/connect-four/cmd/connect/render"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	blue   = color.RGBA{B: 255, A: 255}
)

func cell(img image.Image, row int, col int) color.RGBA {
	x, y := render.Center(row, col)
	return pixel(img, x, y)
}

func pixel(img image.Image, x float64, y float64) color.RGBA {
	r, g, b, a := img.At(int(x), int(y)).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func Test_PNG(t *testing.T) {
	g := game.New(zerolog.Nop())
	require.NoError(t, g.Start())

	_, err := g.Drop(0)
	require.NoError(t, err)
	_, err = g.Drop(0)
	require.NoError(t, err)

	data, err := render.PNG(g.State())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, render.Width, img.Bounds().Dx())
	require.Equal(t, render.Height, img.Bounds().Dy())

	require.Equal(t, red, cell(img, 0, 0))
	require.Equal(t, yellow, cell(img, 1, 0))
	require.Equal(t, white, cell(img, 2, 0))
	require.Equal(t, white, cell(img, 0, 6))

	// Corner of the bottom left square is part of the board.
	x, y := render.Center(0, 0)
	require.Equal(t, blue, pixel(img, x-render.Radius-2, y+render.Radius+2))
}

func Test_Save(t *testing.T) {
	dir := t.TempDir() + "/shots"

	path, err := render.Save(dir, "board", game.New(zerolog.Nop()).State())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}
