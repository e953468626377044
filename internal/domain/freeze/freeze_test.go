package freeze_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/spectral-layer/arcade/internal/domain/freeze"
)

func TestFromEnv(t *testing.T) {
	const key = "ARCADE_FROZEN_TEST"

	Convey("Given an env-backed freeze checker", t, func() {
		Convey("When the variable is unset", func() {
			t.Setenv(key, "")
			So(freeze.FromEnv(key, false).Frozen(), ShouldBeFalse)
			So(freeze.FromEnv(key, true).Frozen(), ShouldBeTrue)
		})

		Convey("When the variable is true", func() {
			t.Setenv(key, "true")
			So(freeze.FromEnv(key, false).Frozen(), ShouldBeTrue)
		})

		Convey("When the variable is TRUE in caps", func() {
			t.Setenv(key, "TRUE")
			So(freeze.FromEnv(key, false).Frozen(), ShouldBeTrue)
		})

		Convey("When the variable is false", func() {
			t.Setenv(key, "false")
			So(freeze.FromEnv(key, true).Frozen(), ShouldBeFalse)
		})

		Convey("When the variable holds junk", func() {
			t.Setenv(key, "maybe")
			So(freeze.FromEnv(key, true).Frozen(), ShouldBeFalse)
		})

		Convey("When the flag flips between calls", func() {
			c := freeze.FromEnv(key, false)
			t.Setenv(key, "false")
			So(c.Frozen(), ShouldBeFalse)
			t.Setenv(key, "true")
			So(c.Frozen(), ShouldBeTrue)
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Given static checkers", t, func() {
		So(freeze.Static(true).Frozen(), ShouldBeTrue)
		So(freeze.Static(false).Frozen(), ShouldBeFalse)
	})
}
