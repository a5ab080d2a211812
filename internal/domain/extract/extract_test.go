package extract_test

import (
	"testing"

	"github.com/mhladik/rinkrating/internal/domain/extract"
	"github.com/mhladik/rinkrating/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func stats(goals, assists int) *model.BoxStats {
	return &model.BoxStats{Total: &model.StatLine{Goals: goals, Assists: assists}}
}

func TestExtractRosterShape(t *testing.T) {
	Convey("Given a boxscore with roster arrays only", t, func() {
		x := extract.New()
		box := &model.Boxscore{
			Home: &model.TeamBox{Players: []model.BoxPlayer{
				{ID: "p1", FullName: "David Pastrnak", Statistics: stats(2, 1)},
				{ID: "p2", FullName: "Brad Marchand", Statistics: stats(0, 2)},
			}},
			Away: &model.TeamBox{Players: []model.BoxPlayer{
				{ID: "p3", FullName: "Auston Matthews", Statistics: stats(1, 0)},
			}},
		}

		recs := x.Extract(box)

		Convey("Then every player appears exactly once with their stats", func() {
			So(recs, ShouldHaveLength, 3)
			So(recs[0], ShouldResemble, model.PerformanceRecord{PlayerID: "p1", Name: "David Pastrnak", Goals: 2, Assists: 1})
			So(recs[2].PlayerID, ShouldEqual, "p3")
		})
	})
}

func TestExtractLeadersAndRosterMerge(t *testing.T) {
	Convey("Given a player present in both leaders and roster", t, func() {
		x := extract.New()
		box := &model.Boxscore{
			Home: &model.TeamBox{
				Leaders: map[string][]model.BoxPlayer{
					"points": {{ID: "p1", FullName: "David Pastrnak", Statistics: stats(2, 1)}},
					"goals":  {{ID: "p1", FullName: "David Pastrnak", Statistics: stats(2, 0)}},
				},
				Players: []model.BoxPlayer{
					{ID: "p1", FullName: "David Pastrnak", Statistics: stats(2, 1)},
				},
			},
		}

		recs := x.Extract(box)

		Convey("Then sub-records merge into one entry with summed stats", func() {
			So(recs, ShouldHaveLength, 1)
			So(recs[0].Goals, ShouldEqual, 6)
			So(recs[0].Assists, ShouldEqual, 2)
		})
	})
}

func TestExtractIdentityPriority(t *testing.T) {
	Convey("Given records with varying identity fields", t, func() {
		x := extract.New()

		Convey("An opaque id wins over everything", func() {
			box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
				{ID: "p1", SRID: "sr:1", Reference: "8470000", FullName: "A B"},
			}}}
			recs := x.Extract(box)
			So(recs[0].PlayerID, ShouldEqual, "p1")
		})

		Convey("sr_id beats reference and name", func() {
			box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
				{SRID: "sr:1", Reference: "8470000", FullName: "A B"},
			}}}
			recs := x.Extract(box)
			So(recs[0].PlayerID, ShouldEqual, "sr:1")
		})

		Convey("The normalized name is the last resort", func() {
			box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
				{FirstName: "David", LastName: "Pastrnak"},
				{FullName: "  David   Pastrnak "},
			}}}
			recs := x.Extract(box)
			So(recs, ShouldHaveLength, 1)
			So(recs[0].PlayerID, ShouldEqual, "david pastrnak")
		})
	})
}

func TestExtractDropsUnresolvable(t *testing.T) {
	Convey("Given a record with no resolvable name", t, func() {
		x := extract.New()
		box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
			{Statistics: stats(3, 3)},
			{ID: "p2", FullName: "Kept Player"},
		}}}

		recs := x.Extract(box)

		Convey("Then it is dropped, never assigned a synthetic identity", func() {
			So(recs, ShouldHaveLength, 1)
			So(recs[0].PlayerID, ShouldEqual, "p2")
		})
	})

	Convey("Given name fallback is disabled", t, func() {
		x := extract.New(extract.WithNameFallback(false))
		box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
			{FullName: "No Numeric Identity"},
		}}}

		Convey("Then name-only records are dropped too", func() {
			So(x.Extract(box), ShouldBeEmpty)
		})
	})
}

func TestExtractDefaultsToZero(t *testing.T) {
	Convey("Given records with missing statistics", t, func() {
		x := extract.New()
		box := &model.Boxscore{Home: &model.TeamBox{Players: []model.BoxPlayer{
			{ID: "p1", FullName: "No Stats"},
			{ID: "p2", FullName: "Flat Stats", Statistics: &model.BoxStats{Goals: 1}},
		}}}

		recs := x.Extract(box)

		Convey("Then goals and assists default to zero, never unknown", func() {
			So(recs[0].Goals, ShouldEqual, 0)
			So(recs[0].Assists, ShouldEqual, 0)
			So(recs[1].Goals, ShouldEqual, 1)
		})
	})

	Convey("Given a nil boxscore", t, func() {
		So(extract.New().Extract(nil), ShouldBeEmpty)
	})
}
