package game

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type playerSet struct {
	Red    Player
	Yellow Player
}

// Players represents the set of players that can be used. Red is player one
// and always opens a round.
var Players = playerSet{
	Red:    newPlayer("RED", 1),
	Yellow: newPlayer("YELLOW", 2),
}

// =============================================================================

// Player represents a player in the system. The zero value represents no
// player and is what an empty cell holds.
type Player struct {
	name   string
	number int
}

func newPlayer(player string, number int) Player {
	return Player{name: player, number: number}
}

// IsZero checks if the player is set to its zero value.
func (p Player) IsZero() bool {
	return p.name == ""
}

// String returns the name of the player.
func (p Player) String() string {
	return p.name
}

// Title returns the name of the player for display, "Red" or "Yellow".
func (p Player) Title() string {
	return cases.Title(language.English).String(p.name)
}

// Number returns 1 or 2 for the players and 0 for the zero value.
func (p Player) Number() int {
	return p.number
}

// Other returns the opponent of the player.
func (p Player) Other() Player {
	switch p {
	case Players.Red:
		return Players.Yellow
	case Players.Yellow:
		return Players.Red
	}

	return Player{}
}

// Equal provides support for the go-cmp package and testing.
func (p Player) Equal(p2 Player) bool {
	return p.name == p2.name
}
