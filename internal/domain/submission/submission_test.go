package submission_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spectral-layer/arcade/internal/domain/game"
	"github.com/spectral-layer/arcade/internal/domain/submission"
)

func TestValidate(t *testing.T) {
	Convey("Given raw submissions", t, func() {
		Convey("When the input is well-formed", func() {
			sub, err := submission.Validate(submission.Raw{
				Wallet: "0xabcdef0123",
				Game:   "slalom",
				Score:  float64(42),
			})
			So(err, ShouldBeNil)
			So(sub.Wallet, ShouldEqual, "0xabcdef0123")
			So(sub.Game, ShouldEqual, game.Slalom)
			So(sub.Score, ShouldEqual, 42)
		})

		Convey("When the wallet has surrounding whitespace", func() {
			sub, err := submission.Validate(submission.Raw{
				Wallet: "  abcdef  ",
				Game:   "snowball",
				Score:  float64(1),
			})
			So(err, ShouldBeNil)
			So(sub.Wallet, ShouldEqual, "abcdef")
		})

		Convey("When the wallet is too short", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "ab",
				Game:   "slalom",
				Score:  float64(10),
			})
			So(errors.Is(err, submission.ErrInvalidWallet), ShouldBeTrue)
		})

		Convey("When the wallet is whitespace only", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "      ",
				Game:   "slalom",
				Score:  float64(10),
			})
			So(errors.Is(err, submission.ErrInvalidWallet), ShouldBeTrue)
		})

		Convey("When the game is unknown", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "chess",
				Score:  float64(10),
			})
			So(errors.Is(err, submission.ErrInvalidGame), ShouldBeTrue)
		})

		Convey("When game aliases are used", func() {
			sub, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "Snowball Frenzy",
				Score:  float64(10),
			})
			So(err, ShouldBeNil)
			So(sub.Game, ShouldEqual, game.Snowball)
		})

		Convey("When the score is negative", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "slalom",
				Score:  float64(-1),
			})
			So(errors.Is(err, submission.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When the score is not finite", func() {
			for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
				_, err := submission.Validate(submission.Raw{
					Wallet: "abcdef",
					Game:   "slalom",
					Score:  bad,
				})
				So(errors.Is(err, submission.ErrInvalidScore), ShouldBeTrue)
			}
		})

		Convey("When the score is a numeric string", func() {
			sub, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "slalom",
				Score:  "123.5",
			})
			So(err, ShouldBeNil)
			So(sub.Score, ShouldEqual, 123.5)
		})

		Convey("When the score is a non-numeric string", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "slalom",
				Score:  "lots",
			})
			So(errors.Is(err, submission.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When the score is missing entirely", func() {
			_, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "slalom",
				Score:  nil,
			})
			So(errors.Is(err, submission.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("When the score is zero", func() {
			sub, err := submission.Validate(submission.Raw{
				Wallet: "abcdef",
				Game:   "slalom",
				Score:  float64(0),
			})
			So(err, ShouldBeNil)
			So(sub.Score, ShouldEqual, 0)
		})
	})
}
