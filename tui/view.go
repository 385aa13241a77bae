package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/style"
	"github.com/abouramd/live-stream/util"
	"github.com/abouramd/live-stream/watch"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
)

var (
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var view string

	switch b.state {
	case loadingState:
		view = b.viewLoading()
	case errorState:
		view = b.viewError()
	case sportsState:
		view = listExtraPaddingStyle.Render(b.sportsC.View())
	case matchesState:
		view = listExtraPaddingStyle.Render(b.matchesC.View())
	case sourcesState:
		view = listExtraPaddingStyle.Render(b.sourcesC.View())
	case streamsState:
		view = listExtraPaddingStyle.Render(b.streamsC.View())
	}

	return b.notifier.View(view)
}

func (b *statefulBubble) viewLoading() string {
	lines := []string{
		style.Title("Loading"),
		"",
		fmt.Sprintf("%s %s", b.spinnerC.View(), b.progressStatus),
	}

	if match, ok := b.selectedMatch.Get(); ok && b.awaiting.IsPresent() {
		lines = append(lines, "", style.Faint(match.Versus()))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	title, hint := "Error", ""

	switch {
	case errors.Is(b.lastError, catalog.ErrMatchNotFound):
		title, hint = "Match not found", "It may have ended or been removed from today's listings."
	case errors.Is(b.lastError, watch.ErrTimeout):
		title, hint = "Timed out", "No source answered in time. Go back and try again."
	}

	lines := []string{style.ErrorTitle(title), ""}
	if b.lastError != nil {
		lines = append(lines, style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+b.lastError.Error()))
	}
	if hint != "" {
		lines = append(lines, "", style.Faint(hint))
	}

	return b.renderLines(true, lines)
}

// renderLines wraps lines to the window width and appends the help footer.
func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")

	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", util.Max(0, b.height-h-1))
		}
		l += b.helpC.View(b.keymap)
	}

	if b.width > 0 {
		l = wrap.String(l, b.width)
	}

	return paddingStyle.Render(l)
}
