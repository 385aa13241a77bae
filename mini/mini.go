// Package mini is the prompt-driven interface: category, match, source, stream.
package mini

import (
	"context"
	"io"
	"os"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/open"
	"github.com/abouramd/live-stream/util"
	"github.com/abouramd/live-stream/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Options selects where the prompts start.
type Options struct {
	Category catalog.Category
	MatchID  string
}

type mini struct {
	ctx     context.Context
	app     *app.App
	session *watch.Session

	state         state
	statesHistory util.Stack[state]

	prompt prompter
	out    io.Writer
	open   func(url string) error

	category      catalog.Category
	cachedMatches map[catalog.Category][]model.Match
	selectedMatch mo.Option[model.Match]
}

func newMini(ctx context.Context, a *app.App, prompt prompter, out io.Writer) *mini {
	return &mini{
		ctx:           ctx,
		app:           a,
		session:       a.NewSession(ctx),
		statesHistory: util.Stack[state]{},
		prompt:        prompt,
		out:           out,
		open: func(url string) error {
			return open.URL(url, viper.GetString(key.WatchBrowser))
		},
		category:      app.DefaultCategory(),
		cachedMatches: make(map[catalog.Category][]model.Match),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if !lo.Contains([]state{quitState}, m.state) {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

// Run prompts until the user quits.
func Run(ctx context.Context, a *app.App, options *Options) error {
	if options == nil {
		options = &Options{}
	}

	m := newMini(ctx, a, surveyPrompter{pageSize: viper.GetInt(key.MiniPageSize)}, os.Stdout)
	defer m.session.Close()

	m.start(options)
	return m.loop()
}

func (m *mini) start(options *Options) {
	m.state = categorySelectState
	if options.Category.Valid() {
		m.category = options.Category
		m.newState(matchSelectState)
	}

	if id := options.MatchID; id != "" {
		erase := m.progress("Looking up match..")
		match := m.app.Resolver.FindByID(m.ctx, id)
		erase()

		if found, ok := match.Get(); ok {
			m.selectedMatch = mo.Some(found)
			m.newState(sourceSelectState)
		} else {
			m.fail("Match " + id + " not found")
		}
	}
}

func (m *mini) loop() error {
	for m.state != quitState {
		if err := m.ctx.Err(); err != nil {
			return nil
		}

		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case categorySelectState:
		return m.handleCategorySelectState()
	case matchSelectState:
		return m.handleMatchSelectState()
	case sourceSelectState:
		return m.handleSourceSelectState()
	case streamSelectState:
		return m.handleStreamSelectState()
	}

	return nil
}
