package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abouramd/live-stream/api"
	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/watch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func newTestBubble(options *Options) (*statefulBubble, func()) {
	server := httptest.NewServer(http.NotFoundHandler())
	a := app.NewWithClient(api.New(api.Options{BaseURL: server.URL, HTTPClient: server.Client()}))

	ctx, cancel := context.WithCancel(context.Background())
	b := newBubble(ctx, a, options)
	b.resize(100, 40)

	return b, func() {
		cancel()
		server.Close()
	}
}

func streamOf(source, id, embed string) model.Stream {
	return model.Stream{
		ID:       embed,
		StreamNo: 1,
		Language: "English",
		EmbedURL: embed,
		Source:   source,
		Origin:   model.SourceRef{Source: source, ID: id},
	}
}

func TestStreamLookup(t *testing.T) {
	Convey("Given a bubble on the sources of a match", t, func() {
		viper.Reset()
		viper.Set(key.IconsVariant, "plain")

		b, cleanup := newTestBubble(nil)
		defer cleanup()

		alpha := model.SourceRef{Source: "alpha", ID: "a"}
		bravo := model.SourceRef{Source: "bravo", ID: "b"}
		match := model.Match{ID: "m1", Title: "Home vs Away", Sources: []model.SourceRef{alpha, bravo}}

		b.selectMatch(match)
		b.newState(sourcesState)

		Convey("The source list offers every feed plus all of them", func() {
			items := b.sourcesC.Items()
			So(items, ShouldHaveLength, 3)
			So(items[0].(*listItem).Title(), ShouldEqual, "All sources (2)")
			So(items[1].(*listItem).Title(), ShouldEqual, "Alpha")
		})

		Convey("When a second source is chosen before the first answers", func() {
			b.selectSources([]model.SourceRef{alpha})
			first := b.machine.State().Token
			b.startLoading("finding")

			b.selectSources([]model.SourceRef{bravo})
			second := b.machine.State().Token

			Convey("The first answer is discarded", func() {
				b.Update(streamsResolvedMsg{token: first, streams: []model.Stream{streamOf("alpha", "a", "https://e/a")}})

				So(b.state, ShouldEqual, loadingState)
				So(b.machine.State().Kind, ShouldEqual, watch.Loading)
				So(b.machine.State().Token, ShouldEqual, second)
			})

			Convey("The second answer is shown", func() {
				b.Update(streamsResolvedMsg{token: second, streams: []model.Stream{streamOf("bravo", "b", "https://e/b")}})
				b.Update(streamsResolvedMsg{token: first, streams: []model.Stream{streamOf("alpha", "a", "https://e/a")}})

				So(b.state, ShouldEqual, streamsState)
				So(b.streamsC.Items(), ShouldHaveLength, 1)
				So(b.machine.State().Streams[0].EmbedURL, ShouldEqual, "https://e/b")
			})
		})

		Convey("When the lookup times out", func() {
			b.selectSources([]model.SourceRef{alpha})
			token := b.machine.State().Token
			b.startLoading("finding")

			b.Update(streamsResolvedMsg{token: token, err: watch.ErrTimeout})

			Convey("An explicit timeout is shown", func() {
				So(b.state, ShouldEqual, errorState)
				So(errors.Is(b.lastError, watch.ErrTimeout), ShouldBeTrue)
				So(b.machine.State().Kind, ShouldEqual, watch.Failed)
				So(b.View(), ShouldContainSubstring, "Timed out")
			})

			Convey("Going back returns to the sources", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, sourcesState)
			})
		})

		Convey("When the user leaves while streams are loading", func() {
			b.selectSources([]model.SourceRef{alpha})
			token := b.machine.State().Token
			b.startLoading("finding")

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			b.Update(streamsResolvedMsg{token: token, streams: []model.Stream{streamOf("alpha", "a", "https://e/a")}})

			Convey("The view stays where the user went", func() {
				So(b.state, ShouldEqual, sourcesState)
				So(b.awaiting.IsAbsent(), ShouldBeTrue)
				So(b.machine.State().Kind, ShouldEqual, watch.Ready)
			})
		})

		Convey("When a stream is chosen", func() {
			viper.Set(key.WatchOpenOnSelect, false)

			b.selectSources([]model.SourceRef{alpha})
			token := b.machine.State().Token
			b.startLoading("finding")
			b.Update(streamsResolvedMsg{token: token, streams: []model.Stream{
				streamOf("alpha", "a", "https://e/1"),
				streamOf("alpha", "a", "https://e/2"),
			}})
			So(b.state, ShouldEqual, streamsState)

			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

			Convey("It becomes the active stream and is marked", func() {
				So(cmd, ShouldNotBeNil)
				So(b.machine.State().Kind, ShouldEqual, watch.Chosen)
				So(b.machine.State().ActiveEmbedURL, ShouldEqual, "https://e/1")
				So(b.streamsC.Items()[0].(*listItem).marked, ShouldBeTrue)
				So(b.streamsC.Items()[1].(*listItem).marked, ShouldBeFalse)
			})
		})
	})
}

func TestDeepLink(t *testing.T) {
	Convey("Given a bubble opened on a match id", t, func() {
		viper.Reset()

		b, cleanup := newTestBubble(&Options{MatchID: "gone"})
		defer cleanup()

		So(b.Init(), ShouldNotBeNil)
		So(b.state, ShouldEqual, loadingState)

		Convey("An absent match shows not found", func() {
			b.Update(matchFoundMsg{id: "gone", match: mo.None[model.Match]()})

			So(b.state, ShouldEqual, errorState)
			So(errors.Is(b.lastError, catalog.ErrMatchNotFound), ShouldBeTrue)
			So(b.View(), ShouldContainSubstring, "Match not found")
		})

		Convey("A present match opens its sources", func() {
			match := model.Match{ID: "gone", Title: "A vs B", Sources: []model.SourceRef{{Source: "alpha", ID: "a"}}}
			b.Update(matchFoundMsg{id: "gone", match: mo.Some(match)})

			So(b.state, ShouldEqual, sourcesState)
			So(b.sourcesC.Items(), ShouldHaveLength, 1)
			So(b.selectedMatch.MustGet().ID, ShouldEqual, "gone")
		})
	})
}

func TestListings(t *testing.T) {
	Convey("Given a bubble", t, func() {
		viper.Reset()

		b, cleanup := newTestBubble(&Options{Category: catalog.Live})
		defer cleanup()

		Convey("Sports follow the fixed categories", func() {
			b.Update(sportsLoadedMsg{{ID: "football", Name: "Football"}})

			items := b.sportsC.Items()
			So(items, ShouldHaveLength, len(catalog.Fixed)+1)
			So(items[0].(*listItem).internal, ShouldEqual, catalog.Live)
			So(items[len(items)-1].(*listItem).Title(), ShouldEqual, "Football")
		})

		Convey("Matches of another category are ignored", func() {
			b.Init()
			b.Update(matchesLoadedMsg{category: catalog.All, matches: []model.Match{{ID: "x"}}})

			So(b.state, ShouldEqual, loadingState)
			So(b.matchesC.Items(), ShouldBeEmpty)
		})

		Convey("Matches of the open category are shown", func() {
			b.Init()
			b.Update(matchesLoadedMsg{category: catalog.Live, matches: []model.Match{{ID: "x", Title: "X"}, {ID: "y", Title: "Y"}}})

			So(b.state, ShouldEqual, matchesState)
			So(b.matchesC.Items(), ShouldHaveLength, 2)
			So(b.matchesC.Title, ShouldEqual, "Matches · Live now")
		})
	})
}

func TestLookupCommand(t *testing.T) {
	Convey("Given an upstream that never answers", t, func() {
		viper.Reset()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		a := app.NewWithClient(api.New(api.Options{BaseURL: server.URL, HTTPClient: server.Client()}))
		b := newBubble(context.Background(), a, nil)
		b.timeout = 30 * time.Millisecond

		Convey("The lookup command reports a timeout for its own token", func() {
			msg := b.selectSources([]model.SourceRef{{Source: "alpha", ID: "a"}})()

			resolved, ok := msg.(streamsResolvedMsg)
			So(ok, ShouldBeTrue)
			So(errors.Is(resolved.err, watch.ErrTimeout), ShouldBeTrue)
			So(resolved.token, ShouldEqual, b.machine.State().Token)
		})
	})
}
