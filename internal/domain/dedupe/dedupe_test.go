package dedupe_test

import (
	"context"
	"testing"

	"github.com/mhladik/rinkrating/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSeenAndRecord(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty deduper", t, func() {
		d := dedupe.NewInMemoryDeduper()

		Convey("Then a fresh id records as unseen", func() {
			So(d.SeenAndRecord(ctx, "g1"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 1)
		})

		Convey("And a replayed id is rejected", func() {
			So(d.SeenAndRecord(ctx, "g1"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "g1"), ShouldBeTrue)
			So(d.Size(), ShouldEqual, 1)
		})

		Convey("And distinct ids are independent", func() {
			So(d.SeenAndRecord(ctx, "g1"), ShouldBeFalse)
			So(d.SeenAndRecord(ctx, "g2"), ShouldBeFalse)
			So(d.Size(), ShouldEqual, 2)
		})

		Convey("And IDs come back sorted", func() {
			d.SeenAndRecord(ctx, "g2")
			d.SeenAndRecord(ctx, "g1")
			So(d.IDs(), ShouldResemble, []string{"g1", "g2"})
		})
	})
}
