package mini

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abouramd/live-stream/api"
	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/watch"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

// scriptedPrompter answers each prompt with the first option containing the next label.
type scriptedPrompter struct {
	labels   []string
	messages []string
}

func (s *scriptedPrompter) Select(message string, options []string) (int, error) {
	s.messages = append(s.messages, message)

	if len(s.labels) == 0 {
		return -1, errInterrupted
	}

	label := s.labels[0]
	s.labels = s.labels[1:]

	for i, option := range options {
		if strings.Contains(option, label) {
			return i, nil
		}
	}

	return -1, fmt.Errorf("no option %q in %v", label, options)
}

func newUpstream() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/sports":
			_, _ = fmt.Fprint(w, `[{"id":"football","name":"Football"}]`)
		case "/api/matches/live":
			_, _ = fmt.Fprint(w, `[{"id":"m1","title":"Home vs Away","category":"football","sources":[{"source":"alpha","id":"a"},{"source":"bravo","id":"b"}]}]`)
		case "/api/matches/all-today":
			_, _ = fmt.Fprint(w, `[{"id":"m1","title":"Home vs Away","sources":[{"source":"alpha","id":"a"}]}]`)
		case "/api/stream/alpha/a":
			_, _ = fmt.Fprint(w, `[{"id":"1","streamNo":1,"language":"English","hd":true,"embedUrl":"https://embed/alpha/1","source":"alpha"}]`)
		case "/api/stream/bravo/b":
			_, _ = fmt.Fprint(w, `[{"id":"2","streamNo":2,"language":"Spanish","embedUrl":"https://embed/bravo/2","source":"bravo"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestMini(t *testing.T) {
	Convey("Given the prompt interface over an upstream", t, func() {
		viper.Reset()
		viper.Set(key.WatchTimeout, 5)
		viper.Set(key.WatchOpenOnSelect, true)
		viper.Set(key.IconsVariant, "plain")

		server := newUpstream()
		defer server.Close()

		a := app.NewWithClient(api.New(api.Options{BaseURL: server.URL, HTTPClient: server.Client()}))
		prompt := &scriptedPrompter{}
		out := &bytes.Buffer{}

		m := newMini(context.Background(), a, prompt, out)
		defer m.session.Close()

		var opened []string
		m.open = func(url string) error {
			opened = append(opened, url)
			return nil
		}

		Convey("Walking from a category to a stream opens its embed", func() {
			prompt.labels = []string{"Live now", "Home vs Away", "All sources", "Spanish", "Quit"}

			m.start(&Options{})
			So(m.loop(), ShouldBeNil)

			So(opened, ShouldResemble, []string{"https://embed/bravo/2"})
			So(prompt.messages, ShouldResemble, []string{"Category", "Match", "Source", "Stream", "Stream"})

			current := m.session.State()
			So(current.Kind, ShouldEqual, watch.Chosen)
			So(current.Streams, ShouldHaveLength, 2)
			So(current.Streams[0].Origin.String(), ShouldEqual, "alpha/a")
		})

		Convey("The chosen stream is marked on the next prompt", func() {
			prompt.labels = []string{"Home vs Away", "Alpha", "English", "English ·", "Quit"}

			m.start(&Options{Category: catalog.Live})
			So(m.loop(), ShouldBeNil)
			So(opened, ShouldResemble, []string{"https://embed/alpha/1", "https://embed/alpha/1"})
		})

		Convey("An empty listing returns to the categories", func() {
			prompt.labels = []string{"Football"}

			m.start(&Options{})
			So(m.loop(), ShouldBeNil)

			So(prompt.messages, ShouldResemble, []string{"Category", "Category"})
			So(out.String(), ShouldContainSubstring, "No matches in sport/football")
		})

		Convey("A deep link opens the sources of the match", func() {
			prompt.labels = []string{"Alpha"}

			m.start(&Options{MatchID: "m1"})
			So(m.state, ShouldEqual, sourceSelectState)
			So(m.loop(), ShouldBeNil)
			So(m.session.State().Kind, ShouldEqual, watch.Ready)
		})

		Convey("An unknown deep link says so", func() {
			m.start(&Options{MatchID: "missing"})
			So(m.state, ShouldEqual, categorySelectState)
			So(out.String(), ShouldContainSubstring, "Match missing not found")
		})
	})
}

func TestMenu(t *testing.T) {
	Convey("Given a menu of items and binds", t, func() {
		items := []categoryChoice{{label: "one"}, {label: "two"}}

		Convey("Choosing an item returns it", func() {
			b, item, err := menu(&scriptedPrompter{labels: []string{"two"}}, "m", items, back)
			So(err, ShouldBeNil)
			So(b, ShouldBeNil)
			So(item.label, ShouldEqual, "two")
		})

		Convey("Choosing a bind returns the bind", func() {
			b, _, err := menu(&scriptedPrompter{labels: []string{"Back"}}, "m", items, back)
			So(err, ShouldBeNil)
			So(back.eq(b), ShouldBeTrue)
		})

		Convey("Interrupting selects quit", func() {
			b, _, err := menu(&scriptedPrompter{}, "m", items)
			So(err, ShouldBeNil)
			So(quit.eq(b), ShouldBeTrue)
		})
	})
}
