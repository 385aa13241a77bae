package stream

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abouramd/live-stream/api"
	"github.com/abouramd/live-stream/model"
	. "github.com/smartystreets/goconvey/convey"
)

type scriptedUpstream struct {
	delays  map[string]time.Duration
	streams map[string][]model.Stream
	calls   atomic.Int32
}

func (s *scriptedUpstream) Streams(ctx context.Context, source, id string) ([]model.Stream, error) {
	s.calls.Add(1)
	key := source + "/" + id

	select {
	case <-time.After(s.delays[key]):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	streams, ok := s.streams[key]
	if !ok {
		return nil, &api.TransportError{URL: key, Status: http.StatusServiceUnavailable}
	}
	return streams, nil
}

func TestResolveOne(t *testing.T) {
	ctx := context.Background()

	Convey("Given an upstream answering one feed", t, func() {
		upstream := &scriptedUpstream{streams: map[string][]model.Stream{
			"alpha/1": {
				{ID: "s1", StreamNo: 1, Source: "alpha", EmbedURL: "https://e/a1"},
				{ID: "s2", StreamNo: 2, Source: "", EmbedURL: "https://e/a2"},
				{ID: "s3", StreamNo: 3, Source: "charlie", EmbedURL: "https://e/a3"},
			},
		}}
		aggregator := NewAggregator(upstream)

		streams := aggregator.ResolveOne(ctx, "alpha", "1")

		Convey("Every stream records the requested origin", func() {
			So(len(streams), ShouldEqual, 3)
			for _, s := range streams {
				So(s.Origin, ShouldResemble, model.SourceRef{Source: "alpha", ID: "1"})
			}
		})

		Convey("An empty reported source is filled from the request", func() {
			So(streams[1].Source, ShouldEqual, "alpha")
		})

		Convey("A diverging reported source is kept next to the origin", func() {
			So(streams[2].Source, ShouldEqual, "charlie")
			So(streams[2].Origin.Source, ShouldEqual, "alpha")
		})

		Convey("Failures yield an empty slice", func() {
			failed := aggregator.ResolveOne(ctx, "bravo", "2")
			So(failed, ShouldNotBeNil)
			So(failed, ShouldBeEmpty)
		})
	})
}

func TestResolveMany(t *testing.T) {
	ctx := context.Background()

	alpha := []model.Stream{{ID: "1", Source: "alpha"}, {ID: "2", Source: "alpha"}}
	bravo := []model.Stream{{ID: "1", Source: "bravo"}}

	Convey("Given two feeds where the first answers last", t, func() {
		upstream := &scriptedUpstream{
			delays: map[string]time.Duration{"alpha/1": 80 * time.Millisecond},
			streams: map[string][]model.Stream{
				"alpha/1": alpha,
				"bravo/2": bravo,
			},
		}
		aggregator := NewAggregator(upstream)
		refs := []model.SourceRef{{Source: "alpha", ID: "1"}, {Source: "bravo", ID: "2"}}

		Convey("Results follow the caller order, not completion order", func() {
			streams := aggregator.ResolveMany(ctx, refs)
			So(len(streams), ShouldEqual, 3)
			So(streams[0].Source, ShouldEqual, "alpha")
			So(streams[1].Source, ShouldEqual, "alpha")
			So(streams[2].Source, ShouldEqual, "bravo")
		})

		Convey("Duplicate ids across feeds are kept", func() {
			streams := aggregator.ResolveMany(ctx, refs)
			So(streams[0].ID, ShouldEqual, streams[2].ID)
			So(streams[0].Origin, ShouldNotResemble, streams[2].Origin)
		})

		Convey("The feeds are read concurrently", func() {
			upstream.delays["bravo/2"] = 80 * time.Millisecond
			started := time.Now()
			aggregator.ResolveMany(ctx, refs)
			So(time.Since(started), ShouldBeLessThan, 150*time.Millisecond)
		})

		Convey("Reversing the refs reverses the blocks", func() {
			streams := aggregator.ResolveMany(ctx, []model.SourceRef{refs[1], refs[0]})
			So(streams[0].Source, ShouldEqual, "bravo")
			So(streams[2].Source, ShouldEqual, "alpha")
		})
	})

	Convey("Given a failing second feed", t, func() {
		upstream := &scriptedUpstream{streams: map[string][]model.Stream{"alpha/1": alpha}}
		aggregator := NewAggregator(upstream)

		Convey("The merged result equals the healthy feed alone", func() {
			streams := aggregator.ResolveMany(ctx, []model.SourceRef{{Source: "alpha", ID: "1"}, {Source: "bravo", ID: "2"}})
			So(len(streams), ShouldEqual, len(alpha))
			So(streams[0].ID, ShouldEqual, "1")
			So(streams[1].ID, ShouldEqual, "2")
		})

		Convey("An all-failed batch is empty", func() {
			streams := aggregator.ResolveMany(ctx, []model.SourceRef{{Source: "x", ID: "1"}, {Source: "y", ID: "2"}})
			So(streams, ShouldBeEmpty)
		})
	})

	Convey("No refs means no reads", t, func() {
		upstream := &scriptedUpstream{}
		streams := NewAggregator(upstream).ResolveMany(ctx, nil)
		So(streams, ShouldNotBeNil)
		So(streams, ShouldBeEmpty)
		So(upstream.calls.Load(), ShouldEqual, 0)
	})
}

func TestAggregatorOverHTTP(t *testing.T) {
	Convey("Given a real upstream where one feed returns garbage", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/stream/alpha/1":
				_, _ = fmt.Fprint(w, `[{"id":"1","streamNo":1,"language":"English","hd":true,"embedUrl":"https://e/1","source":"alpha"}]`)
			case "/api/stream/bravo/2":
				_, _ = fmt.Fprint(w, `<html>oops</html>`)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		client := api.New(api.Options{BaseURL: server.URL, HTTPClient: server.Client()})
		aggregator := NewAggregator(client)

		streams := aggregator.ResolveMany(context.Background(), []model.SourceRef{
			{Source: "alpha", ID: "1"},
			{Source: "bravo", ID: "2"},
			{Source: "charlie", ID: "3"},
		})

		So(len(streams), ShouldEqual, 1)
		So(streams[0].EmbedURL, ShouldEqual, "https://e/1")
		So(streams[0].Origin, ShouldResemble, model.SourceRef{Source: "alpha", ID: "1"})
	})
}
