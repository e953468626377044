package ranking_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spectral-layer/arcade/internal/domain/game"
	"github.com/spectral-layer/arcade/internal/domain/ranking"
)

func TestAggregate(t *testing.T) {
	Convey("Given per-game bests for two wallets", t, func() {
		bests := []ranking.Best{
			{Wallet: "wallet-one", Game: game.Slalom, Score: 50},
			{Wallet: "wallet-one", Game: game.Snowball, Score: 30},
			{Wallet: "wallet-two", Game: game.Slalom, Score: 80},
			{Wallet: "wallet-two", Game: game.Snowball, Score: 10},
		}

		Convey("When aggregating", func() {
			entries := ranking.Aggregate(bests)

			Convey("Then totals are the sum of per-game bests", func() {
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Wallet, ShouldEqual, "wallet-two")
				So(entries[0].Total, ShouldEqual, 90)
				So(entries[1].Wallet, ShouldEqual, "wallet-one")
				So(entries[1].Total, ShouldEqual, 80)
			})

			Convey("And the winner is the top entry", func() {
				w := ranking.Winner(entries)
				So(w, ShouldNotBeNil)
				So(w.Wallet, ShouldEqual, "wallet-two")
				So(w.Total, ShouldEqual, 90)
			})
		})
	})

	Convey("Given a wallet with a single game played", t, func() {
		entries := ranking.Aggregate([]ranking.Best{
			{Wallet: "solo", Game: game.Snowball, Score: 12},
		})

		Convey("Then the missing game contributes zero", func() {
			So(entries, ShouldHaveLength, 1)
			So(entries[0].BestSlalom, ShouldEqual, 0)
			So(entries[0].BestSnowball, ShouldEqual, 12)
			So(entries[0].Total, ShouldEqual, 12)
		})
	})

	Convey("Given wallets with equal totals", t, func() {
		entries := ranking.Aggregate([]ranking.Best{
			{Wallet: "bbb", Game: game.Slalom, Score: 40},
			{Wallet: "aaa", Game: game.Snowball, Score: 40},
			{Wallet: "ccc", Game: game.Slalom, Score: 40},
		})

		Convey("Then ties break by wallet ascending", func() {
			So(entries[0].Wallet, ShouldEqual, "aaa")
			So(entries[1].Wallet, ShouldEqual, "bbb")
			So(entries[2].Wallet, ShouldEqual, "ccc")
		})
	})

	Convey("Given no bests at all", t, func() {
		entries := ranking.Aggregate(nil)

		Convey("Then the board is empty and the winner nil", func() {
			So(entries, ShouldBeEmpty)
			So(ranking.Winner(entries), ShouldBeNil)
		})
	})
}

func TestPage(t *testing.T) {
	Convey("Given a ranked board of five entries", t, func() {
		var entries []ranking.Entry
		for _, w := range []string{"a", "b", "c", "d", "e"} {
			entries = append(entries, ranking.Entry{Wallet: w})
		}

		Convey("When paging within bounds", func() {
			page := ranking.Page(entries, 2, 1)
			So(page, ShouldHaveLength, 2)
			So(page[0].Wallet, ShouldEqual, "b")
			So(page[1].Wallet, ShouldEqual, "c")
		})

		Convey("When the limit overshoots the tail", func() {
			page := ranking.Page(entries, 10, 3)
			So(page, ShouldHaveLength, 2)
		})

		Convey("When the offset is past the end", func() {
			So(ranking.Page(entries, 5, 9), ShouldBeEmpty)
		})

		Convey("When the limit is zero or negative", func() {
			So(ranking.Page(entries, 0, 0), ShouldBeEmpty)
			So(ranking.Page(entries, -1, 0), ShouldBeEmpty)
		})
	})
}
