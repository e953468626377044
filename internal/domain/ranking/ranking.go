// Package ranking derives the leaderboard view from per-game best scores.
// It never touches storage; callers feed it the (wallet, game, max score)
// rows and it computes ordering, totals and the winner.
package ranking

import (
	"sort"

	"github.com/spectral-layer/arcade/internal/domain/game"
)

// Best is one wallet's best score for a single game.
type Best struct {
	Wallet string
	Game   game.ID
	Score  float64
}

// Entry is one row of the ranked leaderboard. A wallet with no record for a
// game contributes 0 for that game.
type Entry struct {
	Wallet       string  `json:"wallet"`
	BestSlalom   float64 `json:"best_slalom"`
	BestSnowball float64 `json:"best_snowball"`
	Total        float64 `json:"total"`
}

// Aggregate folds per-game bests into ranked entries, ordered by total
// descending. Equal totals tie-break by wallet ascending so the output is a
// deterministic function of the row set.
func Aggregate(bests []Best) []Entry {
	byWallet := make(map[string]*Entry)
	for _, b := range bests {
		e, ok := byWallet[b.Wallet]
		if !ok {
			e = &Entry{Wallet: b.Wallet}
			byWallet[b.Wallet] = e
		}
		switch b.Game {
		case game.Slalom:
			e.BestSlalom = b.Score
		case game.Snowball:
			e.BestSnowball = b.Score
		}
	}

	entries := make([]Entry, 0, len(byWallet))
	for _, e := range byWallet {
		e.Total = e.BestSlalom + e.BestSnowball
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Wallet < entries[j].Wallet
	})
	return entries
}

// Winner returns the top entry, or nil for an empty board.
func Winner(entries []Entry) *Entry {
	if len(entries) == 0 {
		return nil
	}
	w := entries[0]
	return &w
}

// Page slices entries by offset/limit, clamping out-of-range bounds to an
// empty page rather than failing.
func Page(entries []Entry, limit, offset int) []Entry {
	if limit <= 0 || offset < 0 || offset >= len(entries) {
		return []Entry{}
	}
	end := offset + limit
	if end > len(entries) {
		end = len(entries)
	}
	return entries[offset:end]
}
