package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spectral-layer/arcade/internal/adapters/repository"
	"github.com/spectral-layer/arcade/internal/domain/game"
)

func record(runID, wallet string, g game.ID, score float64, at time.Time) repository.Record {
	return repository.Record{RunID: runID, Wallet: wallet, Game: g, Score: score, CreatedAt: at}
}

func TestMemoryStore_Insert(t *testing.T) {
	Convey("Given an empty memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		now := time.Now()

		Convey("When inserting a record", func() {
			err := store.Insert(ctx, record("run-1", "wallet-1", game.Slalom, 50, now))
			So(err, ShouldBeNil)

			Convey("Then the best and last-submitted views reflect it", func() {
				best, ok, err := store.BestScore(ctx, "wallet-1", game.Slalom)
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(best, ShouldEqual, 50)

				last, ok, err := store.LastSubmittedAt(ctx, "wallet-1")
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(last.Equal(now), ShouldBeTrue)
			})

			Convey("And the other game has no best", func() {
				_, ok, err := store.BestScore(ctx, "wallet-1", game.Snowball)
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When inserting a duplicate run id", func() {
			So(store.Insert(ctx, record("run-1", "wallet-1", game.Slalom, 50, now)), ShouldBeNil)
			err := store.Insert(ctx, record("run-1", "wallet-1", game.Slalom, 60, now))

			Convey("Then it is rejected like a primary-key violation", func() {
				So(errors.Is(err, repository.ErrDuplicateRunID), ShouldBeTrue)
			})
		})

		Convey("When inserting malformed records", func() {
			cases := []repository.Record{
				record("", "wallet-1", game.Slalom, 1, now),
				record("run-x", "", game.Slalom, 1, now),
				record("run-y", "wallet-1", game.ID("chess"), 1, now),
				record("run-z", "wallet-1", game.Slalom, -1, now),
			}
			for _, rec := range cases {
				So(errors.Is(store.Insert(ctx, rec), repository.ErrInvalidRecord), ShouldBeTrue)
			}
		})
	})
}

func TestMemoryStore_DerivedViews(t *testing.T) {
	Convey("Given a store with history for two wallets", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(repository.WithInitialCapacity(16))
		base := time.Now()

		records := []repository.Record{
			record("r1", "wallet-1", game.Slalom, 50, base),
			record("r2", "wallet-1", game.Slalom, 70, base.Add(10*time.Second)),
			record("r3", "wallet-1", game.Snowball, 30, base.Add(20*time.Second)),
			record("r4", "wallet-2", game.Slalom, 80, base.Add(30*time.Second)),
			record("r5", "wallet-2", game.Snowball, 10, base.Add(40*time.Second)),
		}
		for _, rec := range records {
			So(store.Insert(ctx, rec), ShouldBeNil)
		}

		Convey("Then the best is the max over history, never a stored field", func() {
			best, ok, err := store.BestScore(ctx, "wallet-1", game.Slalom)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(best, ShouldEqual, 70)
		})

		Convey("And LastSubmittedAt spans both games", func() {
			last, ok, err := store.LastSubmittedAt(ctx, "wallet-1")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(last.Equal(base.Add(20*time.Second)), ShouldBeTrue)
		})

		Convey("And Bests returns one row per wallet/game pair", func() {
			bests, err := store.Bests(ctx)
			So(err, ShouldBeNil)
			So(bests, ShouldHaveLength, 4)

			byKey := make(map[string]float64)
			for _, b := range bests {
				byKey[b.Wallet+"/"+b.Game.String()] = b.Score
			}
			So(byKey["wallet-1/slalom"], ShouldEqual, 70)
			So(byKey["wallet-1/snowball"], ShouldEqual, 30)
			So(byKey["wallet-2/slalom"], ShouldEqual, 80)
			So(byKey["wallet-2/snowball"], ShouldEqual, 10)
		})

		Convey("And the counters match", func() {
			wallets, err := store.CountWallets(ctx)
			So(err, ShouldBeNil)
			So(wallets, ShouldEqual, 2)

			total, err := store.CountRecords(ctx)
			So(err, ShouldBeNil)
			So(total, ShouldEqual, 5)
		})

		Convey("And the full history is retained in order", func() {
			history := store.Records(ctx)
			So(history, ShouldHaveLength, 5)
			So(history[0].RunID, ShouldEqual, "r1")
			So(history[4].RunID, ShouldEqual, "r5")
		})
	})
}

func TestMemoryStore_ConcurrentInserts(t *testing.T) {
	Convey("Given concurrent inserts for the same wallet and game", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()
		now := time.Now()

		const n = 100
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rec := record(fmt.Sprintf("run-%d", i), "wallet-1", game.Slalom, float64(i), now.Add(time.Duration(i)*time.Millisecond))
				_ = store.Insert(ctx, rec)
			}(i)
		}
		wg.Wait()

		Convey("Then every row persists and the derived best is the max", func() {
			total, err := store.CountRecords(ctx)
			So(err, ShouldBeNil)
			So(total, ShouldEqual, n)

			best, ok, err := store.BestScore(ctx, "wallet-1", game.Slalom)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(best, ShouldEqual, n-1)
		})
	})
}
