// Package freeze exposes the global leaderboard freeze switch.
//
// The flag is external configuration, not process state: it is read fresh on
// every call so an operator can flip it without restarting the service.
package freeze

import (
	"os"
	"strings"
)

// EnvKey is the environment variable consulted for the freeze switch.
const EnvKey = "ARCADE_FROZEN"

// Checker reports whether the leaderboard is frozen. Implementations must be
// safe for concurrent use and cheap enough to call once per request.
type Checker interface {
	Frozen() bool
}

type envChecker struct {
	key      string
	fallback bool
}

// FromEnv returns a Checker that reads key on every call. An unset or empty
// variable yields fallback; otherwise only the literal "true"
// (case-insensitive) freezes.
func FromEnv(key string, fallback bool) Checker {
	return &envChecker{key: key, fallback: fallback}
}

func (c *envChecker) Frozen() bool {
	v := strings.TrimSpace(os.Getenv(c.key))
	if v == "" {
		return c.fallback
	}
	return strings.EqualFold(v, "true")
}

// Static returns a Checker pinned to v. Intended for tests and tooling.
func Static(v bool) Checker {
	return staticChecker(v)
}

type staticChecker bool

func (c staticChecker) Frozen() bool { return bool(c) }
