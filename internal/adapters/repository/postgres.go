package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/spectral-layer/arcade/internal/domain/game"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore is the production Store backed by the append-only scores
// table.
type PostgresStore struct {
	db *sql.DB
}

// Connect opens and pings a Postgres connection.
func Connect(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate applies the embedded schema migrations in lexical order.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("reading migrations dir: %w", err)
	}
	for _, entry := range entries {
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", entry.Name(), err)
		}
		if _, err := s.db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Insert appends a record; the single-row statement is atomic, so an aborted
// request never leaves a partial row.
func (s *PostgresStore) Insert(ctx context.Context, rec Record) error {
	if rec.RunID == "" || rec.Wallet == "" || !rec.Game.Valid() || rec.Score < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidRecord, rec)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scores (run_id, wallet, game, score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.RunID, rec.Wallet, rec.Game.String(), rec.Score, rec.CreatedAt)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %s", ErrDuplicateRunID, rec.RunID)
	}
	if err != nil {
		return fmt.Errorf("inserting score: %w", err)
	}
	return nil
}

// BestScore returns max(score) for (wallet, g), or false if none exists.
func (s *PostgresStore) BestScore(ctx context.Context, wallet string, g game.ID) (float64, bool, error) {
	var best sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(score) FROM scores WHERE wallet = $1 AND game = $2
	`, wallet, g.String()).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("querying best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return best.Float64, true, nil
}

// LastSubmittedAt returns the wallet's most recent created_at across games.
func (s *PostgresStore) LastSubmittedAt(ctx context.Context, wallet string) (time.Time, bool, error) {
	var last time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT created_at FROM scores
		WHERE wallet = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, wallet).Scan(&last)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("querying last submission: %w", err)
	}
	return last, true, nil
}

// Bests returns the per-wallet per-game maxima.
func (s *PostgresStore) Bests(ctx context.Context) ([]ranking.Best, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT wallet, game, MAX(score)
		FROM scores
		GROUP BY wallet, game
	`)
	if err != nil {
		return nil, fmt.Errorf("querying bests: %w", err)
	}
	defer rows.Close()

	var out []ranking.Best
	for rows.Next() {
		var (
			b ranking.Best
			g string
		)
		if err := rows.Scan(&b.Wallet, &g, &b.Score); err != nil {
			return nil, fmt.Errorf("scanning best row: %w", err)
		}
		b.Game = game.ID(g)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating best rows: %w", err)
	}
	return out, nil
}

// CountWallets returns the number of distinct wallets with records.
func (s *PostgresStore) CountWallets(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT wallet) FROM scores`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting wallets: %w", err)
	}
	return n, nil
}

// CountRecords returns the total number of stored records.
func (s *PostgresStore) CountRecords(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}
