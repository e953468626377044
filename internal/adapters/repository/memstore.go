package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spectral-layer/arcade/internal/domain/game"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
)

const defaultInitialCapacity = 1024

// MemoryStore is an in-memory Store used when no database is configured and
// by the test suite. It mirrors the SQL semantics exactly: an append-only
// record log plus indexes that are derivable from it.
type MemoryStore struct {
	mu              sync.RWMutex
	initialCapacity int

	records []Record
	runIDs  map[string]struct{}
	// bests[wallet][game] caches max(score); rebuilt trivially on insert
	// since rows are never removed.
	bests  map[string]map[game.ID]float64
	lastAt map[string]time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		initialCapacity: defaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.records = make([]Record, 0, s.initialCapacity)
	s.runIDs = make(map[string]struct{})
	s.bests = make(map[string]map[game.ID]float64)
	s.lastAt = make(map[string]time.Time)
	return s
}

// Insert appends rec to the log. Duplicate run IDs are rejected, matching
// the primary-key constraint of the SQL store.
func (s *MemoryStore) Insert(_ context.Context, rec Record) error {
	if rec.RunID == "" || rec.Wallet == "" || !rec.Game.Valid() || rec.Score < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidRecord, rec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runIDs[rec.RunID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRunID, rec.RunID)
	}
	s.runIDs[rec.RunID] = struct{}{}
	s.records = append(s.records, rec)

	byGame, ok := s.bests[rec.Wallet]
	if !ok {
		byGame = make(map[game.ID]float64)
		s.bests[rec.Wallet] = byGame
	}
	if best, ok := byGame[rec.Game]; !ok || rec.Score > best {
		byGame[rec.Game] = rec.Score
	}
	if last, ok := s.lastAt[rec.Wallet]; !ok || rec.CreatedAt.After(last) {
		s.lastAt[rec.Wallet] = rec.CreatedAt
	}
	return nil
}

// BestScore returns max(score) for (wallet, g), or false if none exists.
func (s *MemoryStore) BestScore(_ context.Context, wallet string, g game.ID) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byGame, ok := s.bests[wallet]
	if !ok {
		return 0, false, nil
	}
	best, ok := byGame[g]
	return best, ok, nil
}

// LastSubmittedAt returns the wallet's most recent created_at across games.
func (s *MemoryStore) LastSubmittedAt(_ context.Context, wallet string) (time.Time, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	last, ok := s.lastAt[wallet]
	return last, ok, nil
}

// Bests returns the per-wallet per-game maxima.
func (s *MemoryStore) Bests(_ context.Context) ([]ranking.Best, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ranking.Best, 0, len(s.bests)*2)
	for wallet, byGame := range s.bests {
		for g, score := range byGame {
			out = append(out, ranking.Best{Wallet: wallet, Game: g, Score: score})
		}
	}
	return out, nil
}

// CountWallets returns the number of distinct wallets with records.
func (s *MemoryStore) CountWallets(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bests), nil
}

// CountRecords returns the total number of stored records.
func (s *MemoryStore) CountRecords(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Records returns a copy of the full submission history, oldest first.
// The log is the audit trail; it is exposed read-only for tests and tooling.
func (s *MemoryStore) Records(_ context.Context) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
