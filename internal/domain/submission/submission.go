// Package submission validates raw score submissions before any ranking
// decision is made.
package submission

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spectral-layer/arcade/internal/domain/game"
)

// Sentinel kinds for validation failures. Callers match with errors.Is to
// translate each into the right client-facing message.
var (
	ErrInvalidWallet = errors.New("invalid wallet")
	ErrInvalidGame   = errors.New("invalid game")
	ErrInvalidScore  = errors.New("invalid score")
)

// minWalletLen is a shallow sanity check on the client-asserted address.
// Ownership of the wallet is not verified anywhere in this service.
const minWalletLen = 5

// Raw carries the untyped fields of an inbound submission exactly as they
// arrived on the wire. Score is any because clients have historically sent
// both JSON numbers and numeric strings; Validate coerces it.
type Raw struct {
	Wallet string
	Game   string
	Score  any
}

// Submission is a validated, normalized score submission.
type Submission struct {
	Wallet string
	Game   game.ID
	Score  float64
}

// Validate normalizes raw into a Submission or fails with one of the
// sentinel kinds above. It is a pure function of its input.
func Validate(raw Raw) (Submission, error) {
	wallet := strings.TrimSpace(raw.Wallet)
	if len(wallet) < minWalletLen {
		return Submission{}, fmt.Errorf("%w: %q", ErrInvalidWallet, wallet)
	}

	id, ok := game.Parse(raw.Game)
	if !ok {
		return Submission{}, fmt.Errorf("%w: %q", ErrInvalidGame, raw.Game)
	}

	score, err := coerceScore(raw.Score)
	if err != nil {
		return Submission{}, err
	}
	if math.IsNaN(score) || math.IsInf(score, 0) || score < 0 {
		return Submission{}, fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}

	return Submission{Wallet: wallet, Game: id, Score: score}, nil
}

// coerceScore converts the wire value to a float64. JSON decoding yields
// float64 for numbers; strings are parsed for clients that quote the score.
func coerceScore(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidScore, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidScore, v)
	}
}
