package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		cfg, err := Load(context.Background())

		Convey("Then the defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.DatabaseURL, ShouldBeEmpty)
			So(cfg.CooldownMS, ShouldEqual, 8000)
			So(cfg.Frozen, ShouldBeFalse)
			So(cfg.MaxLeaderboardLimit, ShouldEqual, 100)
			So(cfg.DefaultLeaderboardLimit, ShouldEqual, 20)
			So(cfg.AllowedOrigins, ShouldContain, "http://localhost:5173")
			So(cfg.DefaultOrigin, ShouldEqual, "https://spectral-layer.github.io")
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given ARCADE_ environment overrides", t, func() {
		t.Setenv("ARCADE_ADDR", ":7070")
		t.Setenv("ARCADE_COOLDOWN_MS", "2500")
		t.Setenv("ARCADE_FROZEN", "true")
		t.Setenv("ARCADE_LOG_LEVEL", "debug")

		cfg, err := Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.CooldownMS, ShouldEqual, 2500)
			So(cfg.Frozen, ShouldBeTrue)
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadYAMLFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "arcade.yaml")
		content := []byte("addr: \":8088\"\ncooldown_ms: 4000\ndefault_origin: \"https://example.org\"\n")
		So(os.WriteFile(path, content, 0o600), ShouldBeNil)
		t.Setenv("ARCADE_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8088")
			So(cfg.CooldownMS, ShouldEqual, 4000)
			So(cfg.DefaultOrigin, ShouldEqual, "https://example.org")
		})

		Convey("When env overrides the file", func() {
			t.Setenv("ARCADE_COOLDOWN_MS", "1000")
			cfg, err := Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8088")
			So(cfg.CooldownMS, ShouldEqual, 1000)
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("ARCADE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load(context.Background())
		So(errors.Is(err, ErrLoadConfig), ShouldBeTrue)
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid configuration values", t, func() {
		cases := map[string]string{
			"ARCADE_ADDR":                      "",
			"ARCADE_COOLDOWN_MS":               "-1",
			"ARCADE_MAX_LEADERBOARD_LIMIT":     "0",
			"ARCADE_DEFAULT_LEADERBOARD_LIMIT": "500",
			"ARCADE_DEFAULT_ORIGIN":            "",
		}
		for key, val := range cases {
			t.Setenv(key, val)
			_, err := Load(context.Background())
			So(errors.Is(err, ErrInvalidConfig), ShouldBeTrue)
			So(os.Unsetenv(key), ShouldBeNil)
		}
	})
}
