package tui

import (
	"context"
	"time"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/color"
	"github.com/abouramd/live-stream/internal/ui"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/open"
	"github.com/abouramd/live-stream/style"
	"github.com/abouramd/live-stream/util"
	"github.com/abouramd/live-stream/watch"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type statefulBubble struct {
	ctx context.Context

	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	spinnerC  spinner.Model
	helpC     help.Model
	sportsC   list.Model
	matchesC  list.Model
	sourcesC  list.Model
	streamsC  list.Model
	notifier  *ui.Model
	lastError error

	app     *app.App
	machine *watch.Machine
	timeout time.Duration

	// awaiting is the token whose result should move the view to the streams list.
	awaiting mo.Option[watch.Token]
	cancel   context.CancelFunc

	category      catalog.Category
	selectedMatch mo.Option[model.Match]

	progressStatus string
	width, height  int

	openURL func(url string) error

	options *Options
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState records the current state in the history unless it is transient.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if !lo.Contains([]state{loadingState, errorState}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range []*list.Model{&b.sportsC, &b.matchesC, &b.sourcesC, &b.streamsC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

func newBubble(ctx context.Context, a *app.App, options *Options) *statefulBubble {
	if options == nil {
		options = &Options{}
	}

	category := options.Category
	if !category.Valid() {
		category = app.DefaultCategory()
	}

	bubble := statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		app:           a,
		machine:       watch.NewMachine(),
		timeout:       a.WatchTimeout(),
		category:      category,
		notifier:      &ui.Model{},
		options:       options,
		openURL: func(url string) error {
			return open.URL(url, viper.GetString(key.WatchBrowser))
		},
	}

	makeList := func(title string, accent lipgloss.Color, singular, plural string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(color.White)

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = style.Colored(style.Base, accent).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.SetStatusBarItemName(singular, plural)
		listC.SetShowPagination(false)
		listC.StatusMessageLifetime = 3 * time.Second
		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.sportsC = makeList("Sports", style.SecondaryColor, "listing", "listings")
	bubble.matchesC = makeList("Matches", style.AccentColor, "match", "matches")
	bubble.sourcesC = makeList("Sources", style.WarningColor, "source", "sources")
	bubble.streamsC = makeList("Streams", style.SuccessColor, "stream", "streams")

	bubble.setState(sportsState)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return &bubble
}
