package season_test

import (
	"context"
	"os"
	"testing"

	"github.com/mhladik/rinkrating/internal/adapters/feed"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/internal/season"
	"github.com/mhladik/rinkrating/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestGeneratorDeterminism(t *testing.T) {
	Convey("Given two generators with the same seed", t, func() {
		a := season.New(season.WithSeed(42), season.WithGames(10)).Generate()
		b := season.New(season.WithSeed(42), season.WithGames(10)).Generate()

		Convey("Then they produce identical seasons", func() {
			So(b, ShouldResemble, a)
		})
	})

	Convey("Given two generators with different seeds", t, func() {
		a := season.New(season.WithSeed(1), season.WithGames(10)).Generate()
		b := season.New(season.WithSeed(2), season.WithGames(10)).Generate()

		Convey("Then the seasons differ", func() {
			So(b, ShouldNotResemble, a)
		})
	})
}

func TestGeneratorShape(t *testing.T) {
	Convey("Given a generated season", t, func() {
		events := season.New(
			season.WithSeed(7),
			season.WithGames(20),
			season.WithTeams(4),
			season.WithPlayersPerTeam(3),
		).Generate()

		Convey("Then every game is completed with distinct sides", func() {
			So(events, ShouldHaveLength, 20)
			for _, ev := range events {
				So(ev.Status, ShouldEqual, model.StatusCompleted)
				So(ev.Home.TeamID, ShouldNotEqual, ev.Away.TeamID)
				So(ev.ID, ShouldNotBeEmpty)
			}
		})

		Convey("Then games are in chronological order", func() {
			for i := 1; i < len(events); i++ {
				So(events[i].Scheduled.After(events[i-1].Scheduled), ShouldBeTrue)
			}
		})

		Convey("Then boxscore goals add up to the team score", func() {
			for _, ev := range events {
				goals := 0
				for _, p := range ev.Box.Home.Players {
					goals += p.Statistics.GoalCount()
				}
				So(goals, ShouldEqual, ev.Home.Score)
			}
		})
	})
}

func TestGeneratorWriteFiles(t *testing.T) {
	ctx := context.Background()

	Convey("Given a season written to disk", t, func() {
		dir := t.TempDir()
		gen := season.New(season.WithSeed(9), season.WithGames(5))
		So(gen.WriteFiles(ctx, dir), ShouldBeNil)

		Convey("When the feed loader reads it back", func() {
			events, err := feed.NewLoader(dir+"/schedule.json", dir+"/boxscores").Load(ctx)
			So(err, ShouldBeNil)

			Convey("Then the loaded season matches the generated one", func() {
				want := gen.Generate()
				So(events, ShouldHaveLength, len(want))
				for i := range want {
					So(events[i].ID, ShouldEqual, want[i].ID)
					So(events[i].Status, ShouldEqual, model.StatusCompleted)
					So(events[i].Home.Score, ShouldEqual, want[i].Home.Score)
					So(events[i].Box, ShouldNotBeNil)
				}
			})
		})
	})
}
