// Package game implements the connect four rules: the board, win detection
// and the state machine that runs rounds and keeps the score.
package game

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultNoticeDuration is how long a notice stays up when no duration is
// configured.
const DefaultNoticeDuration = 3 * time.Second

// Set of notices shown to the players.
const (
	msgColumnFull    = "Column %d is full, try again"
	msgInvalidColumn = "Column %d does not exist"
	msgWinner        = "Player %d wins!!"
	msgDraw          = "The game ends in a draw!!"
)

// Placement is where a dropped piece came to rest.
type Placement struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Player Player `json:"player"`
}

type notice struct {
	text     string
	until    time.Time
	blocking bool
}

// Option changes the default configuration of a game.
type Option func(g *Game)

// WithClock sets the clock used to expire notices.
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// WithNoticeDuration sets how long a notice blocks input.
func WithNoticeDuration(d time.Duration) Option {
	return func(g *Game) {
		g.noticeDuration = d
	}
}

// Game represents a session of connect four and all its state.
type Game struct {
	log            zerolog.Logger
	now            func() time.Time
	noticeDuration time.Duration
	screen         Screen
	board          *Board
	turn           Player
	moves          int
	result         Result
	winner         Player
	winningLine    []Position
	lastMove       Placement
	score          Score
	notice         notice
}

// New constructs a game sitting on the start screen.
func New(log zerolog.Logger, options ...Option) *Game {
	g := Game{
		log:            log,
		now:            time.Now,
		noticeDuration: DefaultNoticeDuration,
		screen:         ScreenStart,
		board:          NewBoard(),
		turn:           Players.Red,
	}

	for _, option := range options {
		option(&g)
	}

	return &g
}

// Start moves the game from the start screen into the first round.
func (g *Game) Start() error {
	if g.screen != ScreenStart {
		return fmt.Errorf("start from %s: %w", g.screen, ErrInvalidTransition)
	}

	g.newRound()
	g.screen = ScreenPlaying

	g.log.Info().Msg("game started")

	return nil
}

// Drop places a piece for the current player in the specified column. A
// full or missing column is rejected with ErrInvalidColumn and leaves the
// game untouched apart from the notice.
func (g *Game) Drop(col int) (Placement, error) {
	if g.screen != ScreenPlaying {
		return Placement{}, fmt.Errorf("drop from %s: %w", g.screen, ErrInvalidTransition)
	}

	// -------------------------------------------------------------------------
	// Validate the column

	playable, err := g.board.IsColumnPlayable(col)
	if err != nil {
		g.setNotice(fmt.Sprintf(msgInvalidColumn, col+1), false)
		return Placement{}, fmt.Errorf("drop: %w", err)
	}

	if !playable {
		g.setNotice(fmt.Sprintf(msgColumnFull, col+1), false)
		return Placement{}, fmt.Errorf("drop: %w", &ColumnError{Column: col, Full: true})
	}

	row, ok := g.board.FindOpenRow(col)
	if !ok {
		return Placement{}, fmt.Errorf("drop: no open row: %w", &ColumnError{Column: col, Full: true})
	}

	// -------------------------------------------------------------------------
	// Apply the move

	g.board.PlacePiece(row, col, g.turn)
	g.moves++
	g.notice = notice{}

	g.lastMove = Placement{
		Row:    row,
		Column: col,
		Player: g.turn,
	}

	g.log.Debug().Str("player", g.turn.String()).Int("row", row).Int("column", col).Int("moves", g.moves).Msg("piece placed")

	// -------------------------------------------------------------------------
	// Check for the end of the round

	if line, won := WinningLine(g.board, g.turn); won {
		g.finishWin(line)
		return g.lastMove, nil
	}

	if g.moves == Rows*Cols {
		g.finishDraw()
		return g.lastMove, nil
	}

	g.turn = g.turn.Other()

	return g.lastMove, nil
}

// Restart begins a new round after a round is over. The score is kept.
func (g *Game) Restart() error {
	if g.screen != ScreenRoundOver {
		return fmt.Errorf("restart from %s: %w", g.screen, ErrInvalidTransition)
	}

	if g.Busy() {
		return ErrBusy
	}

	g.newRound()
	g.screen = ScreenPlaying

	g.log.Info().Int("red", g.score.Red).Int("yellow", g.score.Yellow).Msg("round restarted")

	return nil
}

// Quit terminates the session. It is accepted in every state.
func (g *Game) Quit() {
	g.screen = ScreenTerminated
	g.notice = notice{}

	g.log.Info().Int("red", g.score.Red).Int("yellow", g.score.Yellow).Msg("game terminated")
}

// Busy reports if a round result is still being displayed. Only Restart
// waits on it since a round result always ends the round. Advisories like a
// full column never block.
func (g *Game) Busy() bool {
	return g.notice.blocking && g.noticeVisible()
}

func (g *Game) noticeVisible() bool {
	return g.now().Before(g.notice.until)
}

// Score returns the score for the session.
func (g *Game) Score() Score {
	return g.score
}

// =============================================================================

func (g *Game) newRound() {
	g.board = NewBoard()
	g.turn = Players.Red
	g.moves = 0
	g.result = ResultOngoing
	g.winner = Player{}
	g.winningLine = nil
	g.lastMove = Placement{}
	g.notice = notice{}
}

func (g *Game) finishWin(line []Position) {
	g.result = ResultWin
	g.winner = g.turn
	g.winningLine = line
	g.score.add(g.turn)
	g.screen = ScreenRoundOver

	g.setNotice(fmt.Sprintf(msgWinner, g.turn.Number()), true)

	g.log.Info().Str("winner", g.turn.String()).Int("moves", g.moves).Int("red", g.score.Red).Int("yellow", g.score.Yellow).Msg("round won")
}

func (g *Game) finishDraw() {
	g.result = ResultDraw
	g.score.add(Players.Red)
	g.score.add(Players.Yellow)
	g.screen = ScreenRoundOver

	g.setNotice(msgDraw, true)

	g.log.Info().Int("moves", g.moves).Int("red", g.score.Red).Int("yellow", g.score.Yellow).Msg("round drawn")
}

func (g *Game) setNotice(text string, blocking bool) {
	g.notice = notice{
		text:     text,
		until:    g.now().Add(g.noticeDuration),
		blocking: blocking,
	}
}
