// Package seeder generates randomized score submissions against a running
// instance and verifies the resulting leaderboard, for load testing and for
// seeding local environments.
package seeder

import "time"

// Config controls a seeding run.
type Config struct {
	BaseURL     string
	NumWallets  int
	RunsPerGame int
	Workers     int
	Timeout     time.Duration
	Verbose     bool
}

// Stats accumulates run outcomes.
type Stats struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	Accepted    int64
	Cooldown    int64
	NotImproved int64
	Frozen      int64
	Failed      int64
}
