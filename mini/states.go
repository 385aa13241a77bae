package mini

import (
	"errors"
	"fmt"

	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/util"
	"github.com/abouramd/live-stream/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type state int

const (
	categorySelectState state = iota + 1
	matchSelectState
	sourceSelectState
	streamSelectState
	quitState
)

type categoryChoice struct {
	label    string
	category catalog.Category
}

func (c categoryChoice) String() string {
	return c.label
}

type sourceChoice struct {
	label string
	refs  []model.SourceRef
}

func (c sourceChoice) String() string {
	return c.label
}

type streamChoice struct {
	stream model.Stream
	active bool
}

func (c streamChoice) String() string {
	s := fmt.Sprintf("%s (via %s)", c.stream, c.stream.Origin)
	if c.active {
		s += " " + icon.Get(icon.Mark)
	}
	return s
}

var fixedLabels = map[catalog.Category]string{
	catalog.Live:            "Live now",
	catalog.LivePopular:     "Live now, popular",
	catalog.AllToday:        "Today",
	catalog.AllTodayPopular: "Today, popular",
	catalog.All:             "Everything",
	catalog.AllPopular:      "Everything, popular",
}

func (m *mini) handleCategorySelectState() error {
	erase := m.progress("Loading sports..")
	sports := m.app.Sports.List(m.ctx)
	erase()

	choices := lo.Map(catalog.Fixed, func(c catalog.Category, _ int) categoryChoice {
		return categoryChoice{label: fixedLabels[c], category: c}
	})
	for _, sport := range sports {
		choices = append(choices, categoryChoice{
			label:    sport.String(),
			category: catalog.SportCategory(sport.ID, false),
		})
	}

	m.title("Select Category")
	b, choice, err := menu(m.prompt, "Category", choices)
	if err != nil {
		return err
	}

	if quit.eq(b) {
		m.newState(quitState)
		return nil
	}

	m.category = choice.category
	m.newState(matchSelectState)
	return nil
}

func (m *mini) matchesOf(category catalog.Category, fresh bool) []model.Match {
	if cached, ok := m.cachedMatches[category]; ok && !fresh {
		return cached
	}

	erase := m.progress("Loading matches..")
	matches := m.app.Matches.List(m.ctx, category)
	erase()

	m.cachedMatches[category] = matches
	return matches
}

func (m *mini) handleMatchSelectState() error {
	matches := m.matchesOf(m.category, false)
	if len(matches) == 0 {
		m.fail("No matches in " + m.category.String())
		delete(m.cachedMatches, m.category)
		m.backOr(categorySelectState)
		return nil
	}

	m.title(fmt.Sprintf("Matches >> %s", m.category))
	b, match, err := menu(m.prompt, "Match", matches, refresh, back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
	case back:
		m.backOr(categorySelectState)
	case refresh:
		m.matchesOf(m.category, true)
	default:
		m.selectedMatch = mo.Some(match)
		m.newState(sourceSelectState)
	}

	return nil
}

func (m *mini) handleSourceSelectState() error {
	match, ok := m.selectedMatch.Get()
	if !ok {
		m.backOr(matchSelectState)
		return nil
	}

	if len(match.Sources) == 0 {
		m.fail("No sources for " + match.Versus())
		m.backOr(matchSelectState)
		return nil
	}

	choices := make([]sourceChoice, 0, len(match.Sources)+1)
	if len(match.Sources) > 1 {
		choices = append(choices, sourceChoice{
			label: fmt.Sprintf("All sources (%d)", len(match.Sources)),
			refs:  match.Sources,
		})
	}
	for _, ref := range match.Sources {
		choices = append(choices, sourceChoice{label: util.Capitalize(ref.Source), refs: []model.SourceRef{ref}})
	}

	m.title(fmt.Sprintf("Sources >> %s", match.Versus()))
	b, choice, err := menu(m.prompt, "Source", choices, back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.backOr(matchSelectState)
		return nil
	}

	current := m.lookup(choice.refs)
	switch {
	case current.Kind == watch.Failed && errors.Is(current.Err, watch.ErrTimeout):
		m.fail("No source answered in time")
	case current.Kind == watch.Failed:
		m.fail(current.Err.Error())
	case len(current.Streams) == 0:
		m.fail("No streams found")
	default:
		m.newState(streamSelectState)
	}

	return nil
}

// lookup selects refs on the session and waits for their result.
func (m *mini) lookup(refs []model.SourceRef) watch.State {
	erase := m.progress(fmt.Sprintf("Finding streams from %s..", util.Quantify(len(refs), "source", "sources")))
	defer erase()

	token := m.session.SelectSources(refs)
	settled := func(s watch.State) bool {
		return s.Token == token && s.Kind != watch.Loading
	}

	if current := m.session.State(); settled(current) {
		return current
	}

	for {
		select {
		case <-m.ctx.Done():
			return m.session.State()
		case current, ok := <-m.session.Updates():
			if !ok {
				return m.session.State()
			}
			if settled(current) {
				return current
			}
		}
	}
}

func (m *mini) handleStreamSelectState() error {
	current := m.session.State()
	if len(current.Streams) == 0 {
		m.backOr(sourceSelectState)
		return nil
	}

	choices := lo.Map(current.Streams, func(s model.Stream, _ int) streamChoice {
		return streamChoice{
			stream: s,
			active: current.Kind == watch.Chosen && s.EmbedURL == current.ActiveEmbedURL,
		}
	})

	m.title(fmt.Sprintf("Streams >> %s", util.Quantify(len(choices), "stream", "streams")))
	b, choice, err := menu(m.prompt, "Stream", choices, again, back)
	if err != nil {
		return err
	}

	switch b {
	case quit:
		m.newState(quitState)
		return nil
	case back:
		m.backOr(sourceSelectState)
		return nil
	case again:
		if refreshed := m.lookup(current.Sources); refreshed.Kind == watch.Failed {
			m.fail("Refreshing streams failed")
		}
		return nil
	}

	if !m.session.SelectStream(choice.stream) {
		m.fail("That stream is no longer listed")
		return nil
	}

	m.info(icon.Link, choice.stream.EmbedURL)
	if viper.GetBool(key.WatchOpenOnSelect) {
		if err := m.open(choice.stream.EmbedURL); err != nil {
			m.fail(err.Error())
		}
	}

	return nil
}

// backOr returns to the previous state, or to fallback when there is none.
func (m *mini) backOr(fallback state) {
	if m.statesHistory.Len() == 0 {
		m.setState(fallback)
		return
	}
	m.previousState()
}
