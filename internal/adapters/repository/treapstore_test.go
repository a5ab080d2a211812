package repository_test

import (
	"context"
	"fmt"
	"testing"

	repository "github.com/mhladik/rinkrating/internal/adapters/repository"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTreapStoreSetAndRead(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		s := repository.NewTreapStore()

		Convey("Then unknown players read as absent", func() {
			_, ok := s.Rating(ctx, "p1")
			So(ok, ShouldBeFalse)
			So(s.Count(ctx), ShouldEqual, 0)
		})

		Convey("When ratings are written", func() {
			s.SetRating(ctx, "p1", "Player One", 1540)
			s.SetRating(ctx, "p2", "Player Two", 1500)

			Convey("Then reads return them", func() {
				r, ok := s.Rating(ctx, "p1")
				So(ok, ShouldBeTrue)
				So(r, ShouldEqual, 1540)
				So(s.Count(ctx), ShouldEqual, 2)
			})

			Convey("And a rewrite replaces, not inserts", func() {
				s.SetRating(ctx, "p1", "Player One", 1480)
				r, _ := s.Rating(ctx, "p1")
				So(r, ShouldEqual, 1480)
				So(s.Count(ctx), ShouldEqual, 2)
			})
		})
	})
}

func TestTreapStoreOrdering(t *testing.T) {
	ctx := context.Background()

	Convey("Given players with distinct and tied ratings", t, func() {
		s := repository.NewTreapStore()
		s.SetRating(ctx, "pC", "C", 1500)
		s.SetRating(ctx, "pA", "A", 1500)
		s.SetRating(ctx, "pB", "B", 1540)
		s.SetRating(ctx, "pD", "D", 1460)

		Convey("Then TopN orders by rating desc, id asc", func() {
			top, err := s.TopN(ctx, 3)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 3)
			So(top[0].PlayerID, ShouldEqual, "pB")
			So(top[1].PlayerID, ShouldEqual, "pA")
			So(top[2].PlayerID, ShouldEqual, "pC")
		})

		Convey("And tied ratings share a rank", func() {
			all := s.All(ctx)
			So(all, ShouldHaveLength, 4)
			So(all[1].Rank, ShouldEqual, 2)
			So(all[2].Rank, ShouldEqual, 2)
			So(all[3].Rank, ShouldEqual, 4)
		})

		Convey("And a limit beyond the population returns everyone", func() {
			top, err := s.TopN(ctx, 100)
			So(err, ShouldBeNil)
			So(top, ShouldHaveLength, 4)
		})

		Convey("And a non-positive limit is rejected", func() {
			_, err := s.TopN(ctx, 0)
			So(err, ShouldEqual, repository.ErrInvalidLimit)
		})
	})
}

func TestTreapStoreDeterminism(t *testing.T) {
	ctx := context.Background()

	Convey("Given the same writes in two stores", t, func() {
		a := repository.NewTreapStore()
		b := repository.NewTreapStore()
		for i := 0; i < 200; i++ {
			id := fmt.Sprintf("p%03d", i)
			rating := 1500.0 + float64(i%7)*20
			a.SetRating(ctx, id, id, rating)
			b.SetRating(ctx, id, id, rating)
		}

		Convey("Then both report identical orderings", func() {
			ea := a.All(ctx)
			eb := b.All(ctx)
			So(ea, ShouldResemble, eb)
		})
	})
}
