package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abouramd/live-stream/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolver(t *testing.T) {
	ctx := context.Background()

	snapshot := []model.Match{
		{ID: "7", Title: "Seven"},
		{ID: "42", Title: "First forty-two"},
		{ID: "9", Title: "Nine"},
		{ID: "42", Title: "Second forty-two"},
	}

	Convey("Given a resolver without an index", t, func() {
		upstream := &fakeUpstream{matches: map[string][]model.Match{"all-today": snapshot}}
		resolver := NewResolver(NewMatches(upstream), ResolverOptions{})

		Convey("It scans the all-today snapshot", func() {
			So(resolver.Category(), ShouldEqual, AllToday)
			match, ok := resolver.FindByID(ctx, "9").Get()
			So(ok, ShouldBeTrue)
			So(match, ShouldResemble, snapshot[2])
			So(upstream.calls, ShouldResemble, []string{"matches/all-today"})
		})

		Convey("Duplicate ids resolve to the first occurrence", func() {
			So(resolver.FindByID(ctx, "42").MustGet().Title, ShouldEqual, "First forty-two")
		})

		Convey("Absent ids are absent, not errors", func() {
			So(resolver.FindByID(ctx, "1000").IsAbsent(), ShouldBeTrue)
		})

		Convey("Find reports ErrMatchNotFound", func() {
			_, err := resolver.Find(ctx, "1000")
			So(errors.Is(err, ErrMatchNotFound), ShouldBeTrue)

			match, err := resolver.Find(ctx, "7")
			So(err, ShouldBeNil)
			So(match.Title, ShouldEqual, "Seven")
		})

		Convey("Every lookup re-fetches the snapshot", func() {
			resolver.FindByID(ctx, "7")
			resolver.FindByID(ctx, "9")
			So(upstream.callCount(), ShouldEqual, 2)
		})
	})

	Convey("Given a resolver over a failing snapshot", t, func() {
		upstream := &fakeUpstream{matches: map[string][]model.Match{}}
		resolver := NewResolver(NewMatches(upstream), ResolverOptions{})

		Convey("Lookups are absent", func() {
			So(resolver.FindByID(ctx, "7").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a resolver with an id index", t, func() {
		upstream := &fakeUpstream{matches: map[string][]model.Match{"live": snapshot}}
		resolver := NewResolver(NewMatches(upstream), ResolverOptions{Category: Live, IndexTTL: time.Hour})

		Convey("Lookups within the lifetime share one snapshot", func() {
			So(resolver.FindByID(ctx, "7").MustGet().Title, ShouldEqual, "Seven")
			So(resolver.FindByID(ctx, "42").MustGet().Title, ShouldEqual, "First forty-two")
			So(resolver.FindByID(ctx, "404").IsAbsent(), ShouldBeTrue)
			So(upstream.callCount(), ShouldEqual, 1)
		})
	})

	Convey("Given an indexed resolver whose snapshot read fails", t, func() {
		upstream := &fakeUpstream{matches: map[string][]model.Match{}}
		resolver := NewResolver(NewMatches(upstream), ResolverOptions{IndexTTL: time.Hour})

		Convey("The empty result is not kept", func() {
			resolver.FindByID(ctx, "7")
			resolver.FindByID(ctx, "7")
			So(upstream.callCount(), ShouldEqual, 2)
		})
	})

	Convey("An invalid category falls back to all-today", t, func() {
		resolver := NewResolver(NewMatches(&fakeUpstream{}), ResolverOptions{Category: "nope"})
		So(resolver.Category(), ShouldEqual, AllToday)
	})
}
