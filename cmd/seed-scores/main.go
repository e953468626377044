package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/spectral-layer/arcade/internal/seeder"
	"github.com/spectral-layer/arcade/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumWallets  = 50
	defaultRunsPerGame = 3
	defaultTimeout     = 30 * time.Second
	defaultRunTimeout  = 10 * time.Minute
)

func main() {
	var (
		baseURL     = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numWallets  = flag.Int("wallets", defaultNumWallets, "Number of synthetic wallets")
		runsPerGame = flag.Int("runs", defaultRunsPerGame, "Submissions per wallet per game")
		workers     = flag.Int("workers", runtime.NumCPU()*2, "Number of concurrent workers")
		timeout     = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &seeder.Config{
		BaseURL:     *baseURL,
		NumWallets:  *numWallets,
		RunsPerGame: *runsPerGame,
		Workers:     *workers,
		Timeout:     *timeout,
		Verbose:     *verbose,
	}

	if err := seeder.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Seeding run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
