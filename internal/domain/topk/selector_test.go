package topk_test

import (
	"context"
	"testing"

	repository "github.com/mhladik/rinkrating/internal/adapters/repository"
	"github.com/mhladik/rinkrating/internal/domain/rating"
	"github.com/mhladik/rinkrating/internal/domain/topk"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSelector(t *testing.T) {
	ctx := context.Background()

	Convey("Given a ledger with four rated players", t, func() {
		store := repository.NewTreapStore()
		store.SetRating(ctx, "pB", "B", 1600)
		store.SetRating(ctx, "pA", "A", 1500)
		store.SetRating(ctx, "pC", "C", 1500)
		store.SetRating(ctx, "pD", "D", 1400)
		l := rating.New(store)

		Convey("When selecting the top 3", func() {
			sel := topk.New(3)
			entries, err := sel.Select(ctx, l)

			Convey("Then ties break by ascending player id", func() {
				So(err, ShouldBeNil)
				So(topk.IDs(entries), ShouldResemble, []string{"pB", "pA", "pC"})
			})
		})

		Convey("When K exceeds the population", func() {
			sel := topk.New(10)
			entries, err := sel.Select(ctx, l)

			Convey("Then only known players come back", func() {
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 4)
			})
		})

		Convey("When K is not positive", func() {
			sel := topk.New(0)

			Convey("Then it is clamped to one", func() {
				So(sel.K(), ShouldEqual, 1)
			})
		})
	})

	Convey("Given an empty ledger", t, func() {
		l := rating.New(repository.NewTreapStore())
		entries, err := topk.New(3).Select(context.Background(), l)

		Convey("Then the selection is empty, not an error", func() {
			So(err, ShouldBeNil)
			So(entries, ShouldBeEmpty)
		})
	})
}
