package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/style"
	"github.com/abouramd/live-stream/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// allSources selects every feed of a match at once.
type allSources []model.SourceRef

var categoryTitles = map[catalog.Category]string{
	catalog.Live:            "Live now",
	catalog.LivePopular:     "Live now, popular",
	catalog.AllToday:        "Today",
	catalog.AllTodayPopular: "Today, popular",
	catalog.All:             "Everything",
	catalog.AllPopular:      "Everything, popular",
}

// now is replaced in tests.
var now = time.Now

type listItem struct {
	internal any
	marked   bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case catalog.Category:
		title = categoryTitles[e]
		if title == "" {
			title = e.String()
		}
	case model.Sport:
		title = e.String()
	case model.Match:
		title = e.Title
		if e.Popular {
			title = fmt.Sprintf("%s %s", title, icon.Get(icon.Popular))
		}
	case allSources:
		title = fmt.Sprintf("All sources (%d)", len(e))
	case model.SourceRef:
		title = util.Capitalize(e.Source)
	case model.Stream:
		title = e.String()
	default:
		title = t.FilterValue()
	}

	if t.marked {
		title = fmt.Sprintf("%s %s", title, lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark)))
	}

	return
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case catalog.Category:
		return style.Faint(e.String())
	case model.Sport:
		return style.Faint(e.ID)
	case model.Match:
		return matchDescription(e)
	case allSources:
		names := make([]string, len(e))
		for i, ref := range e {
			names[i] = ref.Source
		}
		return style.Faint(strings.Join(names, ", "))
	case model.SourceRef:
		return style.Faint(e.ID)
	case model.Stream:
		return streamDescription(e)
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case catalog.Category:
		return e.String()
	case model.Sport:
		return e.Name
	case model.Match:
		return e.Title
	case allSources:
		return "all"
	case model.SourceRef:
		return e.Source
	case model.Stream:
		return e.Language
	default:
		return ""
	}
}

func matchDescription(m model.Match) string {
	var parts []string

	if m.Category != "" {
		parts = append(parts, util.Capitalize(m.Category))
	}

	if countdown := util.Countdown(m.Time(), now()); countdown != "" {
		parts = append(parts, countdown)
	}

	parts = append(parts, util.Quantify(len(m.Sources), "source", "sources"))

	return style.Faint(strings.Join(parts, " • "))
}

func streamDescription(s model.Stream) string {
	var parts []string

	if s.HD {
		parts = append(parts, style.Fg(style.SuccessColor)(icon.Get(icon.HD)))
	}

	parts = append(parts, style.Faint("via "+s.Origin.String()))

	if viper.GetBool(key.TUIShowURLs) {
		parts = append(parts, style.Faint(s.EmbedURL))
	}

	return strings.Join(parts, " ")
}
