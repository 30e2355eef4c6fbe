package board

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/ardanlabs/connect-four/cmd/connect/game"
	"github.com/ardanlabs/connect-four/cmd/connect/render"
	"github.com/ardanlabs/connect-four/foundation/logger"
	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer close(quit)

		defer func() {
			if r := recover(); r != nil {
				b.screen.Clear()
				b.log.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("poll events")
			}
		}()

		for {
			event := b.screen.PollEvent()
			if event == nil {
				return
			}

			if b.handle(event) {
				return
			}
		}
	}()

	return quit
}

// handle processes a single event and redraws the screen. It returns true
// when the players want to quit.
func (b *Board) handle(event tcell.Event) bool {
	switch ev := event.(type) {
	case *tcell.EventKey:
		if b.handleKey(ev) {
			b.game.Quit()
			return true
		}

	case *tcell.EventMouse:
		if b.handleMouse(ev) {
			b.game.Quit()
			return true
		}

	case *tcell.EventResize:
		b.screen.Sync()

	case *tcell.EventInterrupt:
		b.log.Debug().Msg("notice expired")
	}

	b.draw()
	b.scheduleRedraw()

	return false
}

func (b *Board) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true

	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.selectCurrent()

	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return true

		case r == 'n':
			b.restart()

		case r == 's':
			b.snapshot()

		case r == 'm':
			b.toggleSound()

		case r == ' ':
			b.selectCurrent()

		case r >= '1' && r <= '0'+game.Cols:
			b.inputCol = int(r - '1')
			b.drop(b.inputCol)
		}
	}

	return false
}

func (b *Board) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()

	// Only act once per press, holding the button sends repeated events.
	pressed := ev.Buttons()&tcell.Button1 != 0
	click := pressed && !b.pressed
	b.pressed = pressed

	if id, ok := b.buttonAt(x, y); ok {
		if !click {
			return false
		}

		switch id {
		case buttonStart:
			b.start()
		case buttonPlayAgain:
			b.restart()
		case buttonQuit:
			return true
		}

		return false
	}

	col, ok := columnAt(x)
	if !ok {
		return false
	}

	b.inputCol = col

	if click {
		b.drop(col)
	}

	return false
}

// =============================================================================

// selectCurrent acts on the default choice of the screen.
func (b *Board) selectCurrent() {
	switch b.game.State().Screen {
	case game.ScreenStart:
		b.start()
	case game.ScreenPlaying:
		b.drop(b.inputCol)
	}
}

func (b *Board) start() {
	if err := b.game.Start(); err != nil {
		b.reject("start", err)
	}
}

func (b *Board) restart() {
	if err := b.game.Restart(); err != nil {
		b.reject("restart", err)
		return
	}

	b.inputCol = game.Cols / 2
}

func (b *Board) drop(col int) {
	placement, err := b.game.Drop(col)
	if err != nil {
		b.reject("drop", err)
		return
	}

	state := b.game.State()
	if state.Screen == game.ScreenRoundOver {
		b.announcer.Speak(state.Notice)
		return
	}

	b.log.Debug().Int("row", placement.Row).Int("column", placement.Column).Msg("dropped")
}

func (b *Board) movePlayerPiece(direction string) {
	if b.game.State().Screen != game.ScreenPlaying {
		return
	}

	switch {
	case direction == dirLeft && b.inputCol > 0:
		b.inputCol--
	case direction == dirRight && b.inputCol < game.Cols-1:
		b.inputCol++
	}
}

func (b *Board) snapshot() {
	start := time.Now()

	b.snapshots++
	name := fmt.Sprintf("%s-%d", b.sessionID, b.snapshots)

	path, err := render.Save(b.snapshotDir, name, b.game.State())
	if err != nil {
		b.status = "Snapshot failed"
		b.log.Error().Err(err).Msg("snapshot")
		return
	}

	b.status = "Saved " + path
	b.log.Info().Str("path", path).Func(logger.Elapsed(start)).Msg("snapshot")
}

func (b *Board) toggleSound() {
	switch b.announcer.TurnSoundOnOff() {
	case true:
		b.status = "Sound on"
	default:
		b.status = "Sound off"
	}
}

// reject tells the players their input was not accepted. A rejected move
// changes nothing in the game.
func (b *Board) reject(action string, err error) {
	b.screen.Beep()

	switch {
	case errors.Is(err, game.ErrInvalidColumn), errors.Is(err, game.ErrBusy):
		b.log.Debug().Err(err).Str("action", action).Msg("rejected")
	default:
		b.log.Debug().Err(err).Str("action", action).Msg("ignored")
	}
}

// scheduleRedraw wakes up the event loop when the current notice expires so
// the screen can move on.
func (b *Board) scheduleRedraw() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}

	d := b.game.NoticeRemaining()
	if d == 0 {
		return
	}

	b.timer = time.AfterFunc(d, func() {
		b.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
}
