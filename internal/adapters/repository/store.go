// Package repository defines the score store interface and its
// implementations. The store is append-only: rows are inserted exactly once
// and never updated or deleted; every "best" is derived from the full row
// set.
package repository

import (
	"context"
	"time"

	"github.com/spectral-layer/arcade/internal/domain/game"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
)

// Record is one accepted score submission. RunID is generated server-side at
// insert time and is never client-supplied.
type Record struct {
	RunID     string
	Wallet    string
	Game      game.ID
	Score     float64
	CreatedAt time.Time
}

// Store provides access to the append-only scores table.
type Store interface {
	// Insert appends a record. It is the only mutating operation; a failed
	// insert leaves no partial row.
	Insert(ctx context.Context, rec Record) error

	// BestScore returns max(score) over records for (wallet, game).
	// The bool is false when no such record exists.
	BestScore(ctx context.Context, wallet string, g game.ID) (float64, bool, error)

	// LastSubmittedAt returns the created_at of the wallet's most recent
	// record across all games. The bool is false when the wallet has none.
	LastSubmittedAt(ctx context.Context, wallet string) (time.Time, bool, error)

	// Bests returns the per-wallet per-game maxima for every wallet with at
	// least one record.
	Bests(ctx context.Context) ([]ranking.Best, error)

	// CountWallets returns the number of distinct wallets with records.
	CountWallets(ctx context.Context) (int, error)

	// CountRecords returns the total number of stored records.
	CountRecords(ctx context.Context) (int, error)
}
