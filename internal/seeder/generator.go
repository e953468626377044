package seeder

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/spectral-layer/arcade/internal/domain/game"
)

// maxScore bounds generated scores.
const maxScore = 100000

// submission is one generated score submission.
type submission struct {
	Wallet string  `json:"wallet"`
	Game   string  `json:"game"`
	Score  float64 `json:"score"`
}

// randomInt returns a random int in [0, n) using crypto/rand.
func randomInt(n int64) int64 {
	v, _ := rand.Int(rand.Reader, big.NewInt(n))
	return v.Int64()
}

// generateWallets produces synthetic wallet addresses.
func generateWallets(n int) []string {
	wallets := make([]string, n)
	for i := range wallets {
		buf := make([]byte, 20)
		_, _ = rand.Read(buf)
		wallets[i] = fmt.Sprintf("0x%x", buf)
	}
	return wallets
}

// generateSubmissions produces runs-per-game submissions for every wallet
// and game, with scores trending upward so later runs are likely to be
// improvements.
func generateSubmissions(wallets []string, runsPerGame int) []submission {
	subs := make([]submission, 0, len(wallets)*len(game.All())*runsPerGame)
	for _, w := range wallets {
		for _, g := range game.All() {
			base := randomInt(maxScore / 2)
			for run := 0; run < runsPerGame; run++ {
				score := base + int64(run)*randomInt(maxScore/10+1)
				subs = append(subs, submission{
					Wallet: w,
					Game:   g.String(),
					Score:  float64(score),
				})
			}
		}
	}
	return subs
}
