// Package service implements the score-submission pipeline and the
// leaderboard read paths on top of the score store.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spectral-layer/arcade/internal/adapters/repository"
	"github.com/spectral-layer/arcade/internal/domain/freeze"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
	"github.com/spectral-layer/arcade/internal/domain/submission"
	"github.com/spectral-layer/arcade/pkg/logger"
	"github.com/spectral-layer/arcade/pkg/metrics"
)

// Soft-rejection reason codes returned in the response envelope.
const (
	ReasonFrozen      = "frozen"
	ReasonCooldown    = "cooldown"
	ReasonNotImproved = "not_improved"
	ReasonImproved    = "improved"
)

// Defaults.
const (
	defaultCooldown = 8 * time.Second
	topSize         = 20
)

// Result describes the outcome of a submission attempt. A non-accepted
// Result with a Reason is a soft rejection, not an error: the request was
// processed, the business rule declined to record a new best.
type Result struct {
	Accepted     bool
	Reason       string
	RetryInMS    int64
	PreviousBest *float64
	CurrentBest  *float64
	Submitted    float64
	Record       *repository.Record
}

// Board is a leaderboard view derived from the store.
type Board struct {
	Frozen       bool
	Winner       *ranking.Entry
	Entries      []ranking.Entry
	TotalWallets int
}

// Service implements the submission and leaderboard operations consumed by
// the HTTP API.
type Service struct {
	mu sync.RWMutex

	store    repository.Store
	freeze   freeze.Checker
	cooldown time.Duration
	now      func() time.Time
	newRunID func() string

	started bool
	logger  logger.Logger

	// Frozen snapshot: built at most once after the freeze flag is first
	// observed true, so final results are byte-stable from then on.
	snapMu   sync.Mutex
	snapshot *Board
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the score store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithFreezeChecker sets the freeze-state accessor.
func WithFreezeChecker(c freeze.Checker) Option {
	return func(s *Service) {
		if c != nil {
			s.freeze = c
		}
	}
}

// WithCooldown sets the minimum interval between submissions per wallet.
func WithCooldown(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.cooldown = d
		}
	}
}

// WithClock sets the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRunIDFunc sets the run-id generator. Intended for tests.
func WithRunIDFunc(f func() string) Option {
	return func(s *Service) {
		if f != nil {
			s.newRunID = f
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		freeze:   freeze.FromEnv(freeze.EnvKey, false),
		cooldown: defaultCooldown,
		now:      time.Now,
		newRunID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service. When no store was configured an in-memory
// store is created.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
		s.logger.Info(ctx, "no database configured, using in-memory store")
	}

	s.started = true
	s.logger.Info(ctx, "leaderboard service started",
		logger.Int64("cooldown_ms", s.cooldown.Milliseconds()),
		logger.Bool("frozen", s.freeze.Frozen()),
	)
	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "leaderboard service stopped")
}

// Submit runs a raw submission through the full pipeline:
// freeze gate -> validator -> rate limiter -> best-score arbiter -> store.
//
// Validation failures return an error matching one of the submission
// sentinels. Storage failures return a wrapped error; they must never be
// reported as success. Everything else is a Result.
func (s *Service) Submit(ctx context.Context, raw submission.Raw) (Result, error) {
	// Freeze gate first: a frozen leaderboard performs no store access for
	// scoring purposes, not even validation.
	if s.freeze.Frozen() {
		metrics.RecordSubmission(ReasonFrozen)
		return Result{Accepted: false, Reason: ReasonFrozen}, nil
	}

	sub, err := submission.Validate(raw)
	if err != nil {
		return Result{}, err
	}

	// Rate limiter: global per-wallet throttle across both games. A strict
	// time-since-last-record check; concurrent requests can both pass, which
	// the append-only store tolerates.
	last, hasLast, err := s.store.LastSubmittedAt(ctx, sub.Wallet)
	if err != nil {
		metrics.RecordSubmissionError()
		return Result{}, fmt.Errorf("cooldown check failed: %w", err)
	}
	if hasLast {
		elapsed := s.now().Sub(last)
		if elapsed < s.cooldown {
			metrics.RecordSubmission(ReasonCooldown)
			return Result{
				Accepted:  false,
				Reason:    ReasonCooldown,
				RetryInMS: (s.cooldown - elapsed).Milliseconds(),
				Submitted: sub.Score,
			}, nil
		}
	}

	// Best-score arbiter: only a strict improvement is recorded.
	best, hasBest, err := s.store.BestScore(ctx, sub.Wallet, sub.Game)
	if err != nil {
		metrics.RecordSubmissionError()
		return Result{}, fmt.Errorf("best score check failed: %w", err)
	}
	if hasBest && sub.Score <= best {
		current := best
		metrics.RecordSubmission(ReasonNotImproved)
		return Result{
			Accepted:    false,
			Reason:      ReasonNotImproved,
			CurrentBest: &current,
			Submitted:   sub.Score,
		}, nil
	}

	rec := repository.Record{
		RunID:     s.newRunID(),
		Wallet:    sub.Wallet,
		Game:      sub.Game,
		Score:     sub.Score,
		CreatedAt: s.now(),
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		metrics.RecordSubmissionError()
		return Result{}, fmt.Errorf("insert failed: %w", err)
	}

	s.logger.Debug(ctx, "score accepted",
		logger.String("wallet", sub.Wallet),
		logger.String("game", sub.Game.String()),
		logger.Float64("score", sub.Score),
		logger.String("run_id", rec.RunID),
	)

	var prev *float64
	if hasBest {
		p := best
		prev = &p
	}
	current := sub.Score
	metrics.RecordSubmission(ReasonImproved)
	return Result{
		Accepted:     true,
		Reason:       ReasonImproved,
		PreviousBest: prev,
		CurrentBest:  &current,
		Submitted:    sub.Score,
		Record:       &rec,
	}, nil
}

// WallOfFame returns the live leaderboard: winner plus the top entries.
func (s *Service) WallOfFame(ctx context.Context) (Board, error) {
	board, err := s.aggregate(ctx)
	if err != nil {
		return Board{}, err
	}
	board.Entries = ranking.Page(board.Entries, topSize, 0)
	return board, nil
}

// Leaderboard returns a ranked page of entries.
func (s *Service) Leaderboard(ctx context.Context, limit, offset int) (Board, error) {
	board, err := s.aggregate(ctx)
	if err != nil {
		return Board{}, err
	}
	board.Entries = ranking.Page(board.Entries, limit, offset)
	return board, nil
}

// FinalResults serves the frozen snapshot once the freeze flag is set; while
// unfrozen it is the live aggregate. The snapshot is computed exactly once
// after the flag is first observed true, so frozen reads are byte-stable.
func (s *Service) FinalResults(ctx context.Context) (Board, error) {
	if !s.freeze.Frozen() {
		return s.WallOfFame(ctx)
	}

	s.snapMu.Lock()
	defer s.snapMu.Unlock()
	if s.snapshot == nil {
		board, err := s.aggregate(ctx)
		if err != nil {
			return Board{}, err
		}
		board.Frozen = true
		board.Entries = ranking.Page(board.Entries, topSize, 0)
		s.snapshot = &board
		metrics.RecordSnapshotBuild()
		s.logger.Info(ctx, "final results snapshot built",
			logger.Int("wallets", board.TotalWallets),
		)
	}
	return *s.snapshot, nil
}

// aggregate recomputes the full ranked board from the store.
func (s *Service) aggregate(ctx context.Context) (Board, error) {
	start := time.Now()
	bests, err := s.store.Bests(ctx)
	if err != nil {
		return Board{}, fmt.Errorf("leaderboard aggregation failed: %w", err)
	}
	entries := ranking.Aggregate(bests)
	metrics.RecordAggregationLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	metrics.RecordLeaderboardRead()

	frozen := s.freeze.Frozen()
	metrics.UpdateFrozen(frozen)
	return Board{
		Frozen:       frozen,
		Winner:       ranking.Winner(entries),
		Entries:      entries,
		TotalWallets: len(entries),
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"cooldown_ms": s.cooldown.Milliseconds(),
		"frozen":      s.freeze.Frozen(),
	}

	if s.started {
		if records, err := s.store.CountRecords(ctx); err == nil {
			stats["records"] = records
			metrics.UpdateStoreRecords(records)
		}
		if wallets, err := s.store.CountWallets(ctx); err == nil {
			stats["wallets"] = wallets
			metrics.UpdateStoreWallets(wallets)
		}
	}
	return stats
}
