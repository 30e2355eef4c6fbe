package board

import "github.com/gdamore/tcell/v2"

type buttonID int

const (
	buttonStart buttonID = iota + 1
	buttonPlayAgain
	buttonQuit
)

// button is a clickable area on the screen.
type button struct {
	id     buttonID
	x      int
	y      int
	width  int
	height int
}

func (bt button) contains(x int, y int) bool {
	return x >= bt.x && x < bt.x+bt.width && y >= bt.y && y < bt.y+bt.height
}

// addButton draws a button with the label centered and makes it clickable
// until the next redraw.
func (b *Board) addButton(id buttonID, x int, y int, width int, height int, label string) {
	style := b.style.Background(tcell.ColorBlue).Foreground(tcell.ColorWhite)

	for h := y; h < y+height; h++ {
		for w := x; w < x+width; w++ {
			b.screen.SetContent(w, h, ' ', nil, style)
		}
	}

	b.printStyle(x+(width-len(label))/2, y+height/2, label, style)

	b.buttons = append(b.buttons, button{id: id, x: x, y: y, width: width, height: height})
}

// buttonAt returns the button under the screen location.
func (b *Board) buttonAt(x int, y int) (buttonID, bool) {
	for _, bt := range b.buttons {
		if bt.contains(x, y) {
			return bt.id, true
		}
	}

	return 0, false
}
