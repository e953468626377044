// Package game defines the closed set of arcade game identifiers.
package game

import "strings"

// ID is the canonical identifier for one of the two arcade games.
// The canonical tokens double as the values stored in the scores table.
type ID string

const (
	// Slalom is the ice slalom mini-game.
	Slalom ID = "slalom"
	// Snowball is the snowball frenzy mini-game.
	Snowball ID = "snowball"
)

// aliases maps every accepted input spelling (canonical tokens, UI ids,
// human-readable labels) to its canonical ID. Lookup keys are lowercase.
var aliases = map[string]ID{
	"slalom":          Slalom,
	"ice_slalom":      Slalom,
	"ice slalom":      Slalom,
	"snowball":        Snowball,
	"snowball_frenzy": Snowball,
	"snowball frenzy": Snowball,
}

// Parse normalizes s to a canonical ID. It trims surrounding whitespace and
// matches aliases case-insensitively. The second return value reports whether
// s named a known game.
func Parse(s string) (ID, bool) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	return id, ok
}

// All returns the canonical game IDs in a fixed order.
func All() []ID {
	return []ID{Slalom, Snowball}
}

// Valid reports whether id is one of the canonical game IDs.
func (id ID) Valid() bool {
	return id == Slalom || id == Snowball
}

func (id ID) String() string {
	return string(id)
}
