package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/okian/tandem/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"TANDEM_CONFIG",
		"TANDEM_ADDR",
		"TANDEM_LOG_LEVEL",
		"TANDEM_WORKER_COUNT",
		"TANDEM_REPORT_QUEUE_SIZE",
		"TANDEM_MATCH_LIMIT",
		"TANDEM_MAX_MATCH_LIMIT",
		"TANDEM_SUBJECT_WEIGHT",
		"TANDEM_LEVEL_WEIGHT",
		"TANDEM_AVAILABILITY_WEIGHT",
		"TANDEM_AVAILABILITY_POINTS_PER_HOUR",
		"TANDEM_BONUS_WEIGHT",
		"TANDEM_TIER_EXCELLENT",
		"TANDEM_TIER_GOOD",
		"TANDEM_TIER_FAIR",
		"TANDEM_SEEKER_ROSTER",
		"TANDEM_PROVIDER_ROSTER",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
				convey.So(cfg.MatchLimit, convey.ShouldEqual, 5)
				convey.So(cfg.TierExcellent, convey.ShouldEqual, 80)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("TANDEM_ADDR", ":8080")
			_ = os.Setenv("TANDEM_WORKER_COUNT", "16")
			_ = os.Setenv("TANDEM_MATCH_LIMIT", "3")
			_ = os.Setenv("TANDEM_SUBJECT_WEIGHT", "35")
			_ = os.Setenv("TANDEM_SEEKER_ROSTER", "/data/seekers.json")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 16)
				convey.So(cfg.MatchLimit, convey.ShouldEqual, 3)
				convey.So(cfg.SubjectWeight, convey.ShouldEqual, 35)
				convey.So(cfg.SeekerRoster, convey.ShouldEqual, "/data/seekers.json")
				convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "tandem.yaml")
			yamlContent := []byte("addr: \":7070\"\nmatch_limit: 10\nmax_match_limit: 100\ntier_good: 55\n")
			convey.So(os.WriteFile(path, yamlContent, 0600), convey.ShouldBeNil)

			_ = os.Setenv("TANDEM_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.MatchLimit, convey.ShouldEqual, 10)
				convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 100)
				convey.So(cfg.TierGood, convey.ShouldEqual, 55)
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("TANDEM_ADDR", ":6060")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
				convey.So(cfg.MatchLimit, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("TANDEM_CONFIG", "/nonexistent/tandem.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value violates validation", func() {
			cases := map[string]string{
				"TANDEM_ADDR":            "",
				"TANDEM_WORKER_COUNT":    "0",
				"TANDEM_MATCH_LIMIT":     "0",
				"TANDEM_MAX_MATCH_LIMIT": "1",
				"TANDEM_SUBJECT_WEIGHT":  "-5",
				"TANDEM_TIER_FAIR":       "95",
			}
			for key, value := range cases {
				clearConfigEnvVars()
				_ = os.Setenv(key, value)

				_, err := config.Load(ctx)

				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
			clearConfigEnvVars()
		})
	})
}
