package config_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mhladik/rinkrating/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no env overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults load and validate", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.TopK, ShouldEqual, 10)
			So(cfg.Odds, ShouldEqual, 2.5)
			So(cfg.BaseStake, ShouldEqual, 1.0)
			So(cfg.BaseRating, ShouldEqual, 1500.0)
			So(cfg.PlayerGoalWeight, ShouldEqual, 20.0)
			So(cfg.PlayerAssistWeight, ShouldEqual, 10.0)
			So(cfg.LossPenalty, ShouldEqual, -10.0)
			So(cfg.ResetOnReentry, ShouldBeTrue)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given env overrides", t, func() {
		t.Setenv("RINKRATING_TOP_K", "3")
		t.Setenv("RINKRATING_ADDR", ":7070")
		t.Setenv("RINKRATING_LOG_LEVEL", "debug")

		cfg, err := config.Load(context.Background())

		Convey("Then env wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.TopK, ShouldEqual, 3)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid values", t, func() {
		Convey("Zero top_k is rejected", func() {
			t.Setenv("RINKRATING_TOP_K", "0")
			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("Odds at or below evens are rejected", func() {
			t.Setenv("RINKRATING_ODDS", "1.0")
			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
