package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abouramd/live-stream/model"
	. "github.com/smartystreets/goconvey/convey"
)

type fixedResolver []model.Stream

func (f fixedResolver) Resolve(context.Context, []model.SourceRef) []model.Stream {
	return f
}

func TestLookup(t *testing.T) {
	Convey("Given a lookup", t, func() {
		Convey("An answer within the deadline is returned", func() {
			ctx, cancel := Deadline(context.Background(), time.Minute)
			defer cancel()

			streams, err := Lookup(ctx, fixedResolver{streamA1}, []model.SourceRef{refA})
			So(err, ShouldBeNil)
			So(streams, ShouldResemble, []model.Stream{streamA1})
		})

		Convey("A resolver outliving the deadline fails with ErrTimeout", func() {
			ctx, cancel := Deadline(context.Background(), 20*time.Millisecond)
			defer cancel()

			streams, err := Lookup(ctx, hangingResolver{}, []model.SourceRef{refA})
			So(errors.Is(err, ErrTimeout), ShouldBeTrue)
			So(streams, ShouldBeNil)
		})

		Convey("A cancelled lookup reports the cancellation", func() {
			ctx, cancel := Deadline(context.Background(), time.Minute)
			cancel()

			_, err := Lookup(ctx, hangingResolver{}, []model.SourceRef{refA})
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})

		Convey("A non-positive timeout leaves the lookup unbounded", func() {
			ctx, cancel := Deadline(context.Background(), 0)
			defer cancel()

			_, ok := ctx.Deadline()
			So(ok, ShouldBeFalse)
		})
	})
}
