package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/mhladik/rinkrating/internal/adapters/http/api"
	app "github.com/mhladik/rinkrating/internal/app"
	"github.com/mhladik/rinkrating/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainComponents(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When loading configuration from the environment", func() {
			t.Setenv("RINKRATING_ADDR", ":8080")
			t.Setenv("RINKRATING_TOP_K", "3")

			ctx := context.Background()
			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.TopK, convey.ShouldEqual, 3)
		})

		convey.Convey("When wiring the service into the HTTP server", func() {
			cfg := config.New()
			svc := app.New(cfg)
			server := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
			mux := http.NewServeMux()

			convey.So(func() {
				server.Register(context.Background(), mux)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("When configuration is invalid", func() {
			t.Setenv("RINKRATING_TOP_K", "0")

			_, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
