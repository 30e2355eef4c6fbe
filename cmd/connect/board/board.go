// Package board handles the game screen and all interactions.
package board

import (
	"fmt"
	"time"

	"github.com/ardanlabs/connect-four/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	cellWidth   = 5
	cellHeight  = 2
	boardWidth  = game.Cols*cellWidth + 1
	boardHeight = game.Rows * cellHeight
	padTop      = 4
	padLeft     = 1
	panelLeft   = boardWidth + 3
	panelWidth  = 44
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	space      = ' '
)

const (
	markerRed    = "🔴"
	markerYellow = "🟡"
	markerWin    = "🟢"
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

// Announcer speaks round results.
type Announcer interface {
	Speak(msg string) bool
	TurnSoundOnOff() bool
}

// Config represents what the board needs to run.
type Config struct {
	Log         zerolog.Logger
	Screen      tcell.Screen
	Game        *game.Game
	Announcer   Announcer
	SnapshotDir string
	SessionID   string
}

// Board represents the game screen and all its state.
type Board struct {
	log         zerolog.Logger
	screen      tcell.Screen
	style       tcell.Style
	game        *game.Game
	announcer   Announcer
	snapshotDir string
	sessionID   string
	snapshots   int
	inputCol    int
	pressed     bool
	buttons     []button
	timer       *time.Timer
	status      string
}

// New contructs a board and renders the start screen.
func New(cfg Config) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	if err := cfg.Screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	cfg.Screen.EnableMouse(tcell.MouseMotionEvents)

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	b := Board{
		log:         cfg.Log,
		screen:      cfg.Screen,
		style:       style,
		game:        cfg.Game,
		announcer:   cfg.Announcer,
		snapshotDir: cfg.SnapshotDir,
		sessionID:   cfg.SessionID,
		inputCol:    game.Cols / 2,
	}

	b.draw()

	return &b, nil
}

// Shutdown tears down the game screen.
func (b *Board) Shutdown() {
	if b.timer != nil {
		b.timer.Stop()
	}

	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. The returned channel is
// closed when the players quit.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// =============================================================================

func (b *Board) draw() {
	b.buttons = nil
	b.screen.Clear()

	state := b.game.State()

	switch state.Screen {
	case game.ScreenStart:
		b.drawStartScreen()

	case game.ScreenPlaying:
		b.drawGameBoard(state)
		b.drawMarker(state)
		b.drawPanel(state)

	case game.ScreenRoundOver:
		if state.Busy {
			b.drawGameBoard(state)
			b.drawPanel(state)
			b.drawModal(state.Notice)
			break
		}
		b.drawEndScreen(state)
	}

	b.screen.Show()
}

func (b *Board) drawStartScreen() {
	width, height := b.screen.Size()

	title := "Connect Four"
	b.print(width/2-len(title)/2, height/3, title)

	b.addButton(buttonStart, width/2-7, height/2, 15, 3, "Start")

	b.print(width/2-12, height/2+5, "<enter> start  <q> quit")
}

func (b *Board) drawEndScreen(state game.BoardState) {
	width, height := b.screen.Size()

	var label string
	switch state.Result {
	case game.ResultDraw:
		label = "The game ends in a draw!!"
	default:
		label = fmt.Sprintf("Player %d wins!!", state.Winner.Number())
	}

	score := scoreLabel(state.Score)

	y := height / 3
	b.print(width/2-len(label)/2, y, label)
	b.print(width/2-len(score)/2, y+2, score)

	b.addButton(buttonPlayAgain, width/2-17, y+5, 16, 3, "Play Again")
	b.addButton(buttonQuit, width/2+2, y+5, 16, 3, "Quit")

	b.print(width/2-15, y+10, "<n> play again      <q> quit")
}

func (b *Board) drawGameBoard(state game.BoardState) {
	style := b.style.Foreground(tcell.ColorGrey)

	for h := 0; h <= boardHeight; h++ {
		for w := 0; w < boardWidth; w++ {
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == boardHeight {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(10, 1, "Connect Four")
	b.print(0, boardHeight+padTop+1, "   ①    ②    ③    ④    ⑤    ⑥    ⑦")

	winning := make(map[game.Position]bool, len(state.WinningLine))
	for _, p := range state.WinningLine {
		winning[p] = true
	}

	for row := range game.Rows {
		for col := range game.Cols {
			player := state.Cells[row][col]
			if player.IsZero() {
				continue
			}

			x, y := cellPosition(row, col)

			switch {
			case winning[game.Position{Row: row, Column: col}]:
				b.print(x, y, markerWin)
			default:
				b.print(x, y, marker(player))
			}
		}
	}
}

func (b *Board) drawMarker(state game.BoardState) {
	if state.Busy {
		return
	}

	x, _ := cellPosition(0, b.inputCol)
	b.print(x, padTop-1, marker(state.Turn))
}

func (b *Board) drawPanel(state game.BoardState) {
	line := func(y int, format string, v ...any) {
		b.print(panelLeft, y, fmt.Sprintf("%-*s", panelWidth, fmt.Sprintf(format, v...)))
	}

	switch state.Screen {
	case game.ScreenRoundOver:
		line(padTop-1, "<n> play again  <q> quit  <s> snapshot  <m> sound")
	default:
		line(padTop-1, "<q> quit  <s> snapshot  <m> sound")
	}
	line(padTop+1, "Turn: %s (%s)", state.Turn.Title(), marker(state.Turn))
	line(padTop+2, "Moves: %d/%d", state.Moves, game.Rows*game.Cols)
	line(padTop+3, "Score: %s", scoreLabel(state.Score))

	b.drawBox(panelLeft, padTop+5, panelLeft+panelWidth, padTop+10)
	b.print(panelLeft+1, padTop+5, " MESSAGES ")
	b.print(panelLeft+2, padTop+6, state.Notice)
	b.print(panelLeft+2, padTop+7, b.status)
}

// drawModal displays a dialog box over the board.
func (b *Board) drawModal(msg string) {
	b.drawBox(5, 8, 33, 13)

	x := 19 - (runewidth.StringWidth(msg) / 2)
	b.print(x, 10, msg)
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style.Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, ' ', nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}
}

func (b *Board) print(x, y int, str string) {
	b.printStyle(x, y, str, b.style)
}

func (b *Board) printStyle(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}

// =============================================================================

// cellPosition returns the screen location of a cell. Row 0 is at the
// bottom of the board.
func cellPosition(row int, col int) (int, int) {
	x := padLeft + 2 + cellWidth*col
	y := padTop + 1 + cellHeight*(game.Rows-1-row)

	return x, y
}

// columnAt returns the board column under the screen x location. Anything
// to the right of the board maps to the last column.
func columnAt(x int) (int, bool) {
	if x < padLeft {
		return 0, false
	}

	col := (x - padLeft) / cellWidth
	switch {
	case col >= game.Cols && x < padLeft+boardWidth+cellWidth:
		col = game.Cols - 1
	case col >= game.Cols:
		return 0, false
	}

	return col, true
}

func marker(p game.Player) string {
	switch p {
	case game.Players.Red:
		return markerRed
	case game.Players.Yellow:
		return markerYellow
	}

	return " "
}

func scoreLabel(s game.Score) string {
	return fmt.Sprintf("Player 1: %d - Player 2: %d", s.Red, s.Yellow)
}
