package game

import "time"

// Screen represents which part of the session the game is in.
type Screen int

// Set of screens in the order a session moves through them.
const (
	ScreenStart Screen = iota
	ScreenPlaying
	ScreenRoundOver
	ScreenTerminated
)

// String implements the fmt.Stringer interface.
func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenRoundOver:
		return "round-over"
	case ScreenTerminated:
		return "terminated"
	}

	return "unknown"
}

// Result represents the outcome of the current round.
type Result int

// Set of round results.
const (
	ResultOngoing Result = iota
	ResultWin
	ResultDraw
)

// String implements the fmt.Stringer interface.
func (r Result) String() string {
	switch r {
	case ResultOngoing:
		return "ongoing"
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	}

	return "unknown"
}

// Score holds the number of rounds each player has won in the session. A
// draw counts for both players.
type Score struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
}

func (s *Score) add(p Player) {
	switch p {
	case Players.Red:
		s.Red++
	case Players.Yellow:
		s.Yellow++
	}
}

// BoardState represent the state of the game for any UI to display.
type BoardState struct {
	Cells       [Rows][Cols]Player `json:"cells"`
	Screen      Screen             `json:"screen"`
	Turn        Player             `json:"turn"`
	Moves       int                `json:"moves"`
	Result      Result             `json:"result"`
	Winner      Player             `json:"winner"`
	WinningLine []Position         `json:"winningLine"`
	LastMove    Placement          `json:"lastMove"`
	Score       Score              `json:"score"`
	Notice      string             `json:"notice"`
	Busy        bool               `json:"busy"`
}

// State returns a copy of the game state for display.
func (g *Game) State() BoardState {
	var text string
	if g.noticeVisible() {
		text = g.notice.text
	}

	var line []Position
	if g.winningLine != nil {
		line = make([]Position, len(g.winningLine))
		copy(line, g.winningLine)
	}

	return BoardState{
		Cells:       g.board.Cells(),
		Screen:      g.screen,
		Turn:        g.turn,
		Moves:       g.moves,
		Result:      g.result,
		Winner:      g.winner,
		WinningLine: line,
		LastMove:    g.lastMove,
		Score:       g.score,
		Notice:      text,
		Busy:        g.Busy(),
	}
}

// NoticeRemaining returns how long the current notice stays on screen.
func (g *Game) NoticeRemaining() time.Duration {
	d := g.notice.until.Sub(g.now())
	if d < 0 {
		return 0
	}

	return d
}
