package feed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhladik/rinkrating/internal/adapters/feed"
	"github.com/mhladik/rinkrating/internal/domain/model"
	"github.com/mhladik/rinkrating/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

const scheduleJSON = `{
  "games": [
    {
      "id": "g1",
      "scheduled": "2025-10-01T19:00:00Z",
      "status": "closed",
      "home": {"id": "t1", "market": "San Jose", "name": "Sharks"},
      "away": {"id": "t2", "name": "Wings"},
      "home_points": 4,
      "away_points": 2
    },
    {
      "id": "g2",
      "scheduled": "2025-10-02T19:00:00Z",
      "status": "final",
      "home": {"id": "t2", "name": "Wings", "points": 1},
      "away": {"id": "t1", "name": "Sharks", "points": 3}
    },
    {
      "id": "g3",
      "scheduled": "2025-10-03T19:00:00Z",
      "status": "scheduled",
      "home": {"id": "t1", "name": "Sharks"},
      "away": {"id": "t2", "name": "Wings"}
    }
  ]
}`

const wrappedBoxJSON = `{
  "game": {
    "home": {
      "players": [
        {"id": "p1", "full_name": "Player A", "statistics": {"total": {"goals": 2, "assists": 1}}}
      ]
    }
  }
}`

const flatBoxJSON = `{
  "home": {
    "leaders": {
      "goals": [
        {"sr_id": "sr:p2", "full_name": "Player B", "statistics": {"goals": 1}}
      ]
    }
  }
}`

func writeFixtures(t *testing.T) (schedulePath, boxDir string) {
	t.Helper()
	dir := t.TempDir()

	schedulePath = filepath.Join(dir, "schedule.json")
	boxDir = filepath.Join(dir, "boxscores")
	if err := os.MkdirAll(boxDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(schedulePath, []byte(scheduleJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(boxDir, "g1.json"), []byte(wrappedBoxJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(boxDir, "g2.json"), []byte(flatBoxJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return schedulePath, boxDir
}

func TestLoaderLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a schedule with boxscore fixtures", t, func() {
		schedulePath, boxDir := writeFixtures(t)
		l := feed.NewLoader(schedulePath, boxDir, feed.WithParseWorkers(2))

		events, err := l.Load(ctx)
		So(err, ShouldBeNil)
		So(events, ShouldHaveLength, 3)

		Convey("Then statuses map onto the domain vocabulary", func() {
			So(events[0].Status, ShouldEqual, model.StatusCompleted)
			So(events[1].Status, ShouldEqual, model.StatusCompleted)
			So(events[2].Status, ShouldEqual, model.StatusScheduled)
		})

		Convey("Then scores come from points fields at either level", func() {
			So(events[0].Home.Score, ShouldEqual, 4)
			So(events[0].Away.Score, ShouldEqual, 2)
			So(events[1].Home.Score, ShouldEqual, 1)
			So(events[1].Away.Score, ShouldEqual, 3)
		})

		Convey("Then the market prefix joins the team name", func() {
			So(events[0].Home.Name, ShouldEqual, "San Jose Sharks")
			So(events[0].Home.TeamID, ShouldEqual, "t1")
		})

		Convey("Then wrapped and flat boxscore shapes both attach", func() {
			So(events[0].Box, ShouldNotBeNil)
			So(events[0].Box.Home.Players, ShouldHaveLength, 1)
			So(events[0].Box.Home.Players[0].Statistics.GoalCount(), ShouldEqual, 2)

			So(events[1].Box, ShouldNotBeNil)
			So(events[1].Box.Home.Leaders["goals"], ShouldHaveLength, 1)
		})

		Convey("Then the scheduled game carries no boxscore", func() {
			So(events[2].Box, ShouldBeNil)
		})
	})
}

func TestLoaderMissingBoxscore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a completed game with no boxscore file", t, func() {
		schedulePath, boxDir := writeFixtures(t)
		So(os.Remove(filepath.Join(boxDir, "g2.json")), ShouldBeNil)

		events, err := feed.NewLoader(schedulePath, boxDir).Load(ctx)

		Convey("Then the event is kept without statistics", func() {
			So(err, ShouldBeNil)
			So(events[1].Box, ShouldBeNil)
			So(events[1].Status, ShouldEqual, model.StatusCompleted)
		})
	})
}

func TestLoaderBadInput(t *testing.T) {
	ctx := context.Background()

	Convey("Given a missing schedule file", t, func() {
		l := feed.NewLoader(filepath.Join(t.TempDir(), "absent.json"), t.TempDir())
		_, err := l.Load(ctx)

		Convey("Then the read error is surfaced", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "read schedule")
		})
	})

	Convey("Given a malformed schedule file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "schedule.json")
		So(os.WriteFile(path, []byte("{nope"), 0o644), ShouldBeNil)

		_, err := feed.NewLoader(path, dir).Load(ctx)

		Convey("Then the decode error is surfaced", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "decode schedule")
		})
	})

	Convey("Given a corrupt boxscore next to a valid schedule", t, func() {
		schedulePath, boxDir := writeFixtures(t)
		So(os.WriteFile(filepath.Join(boxDir, "g1.json"), []byte("><"), 0o644), ShouldBeNil)

		events, err := feed.NewLoader(schedulePath, boxDir).Load(ctx)

		Convey("Then the game loads without statistics", func() {
			So(err, ShouldBeNil)
			So(events[0].Box, ShouldBeNil)
		})
	})
}
