package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Init loads the sports listing in the background and either resolves the
// deep-linked match or opens the default category.
func (b *statefulBubble) Init() tea.Cmd {
	if id := b.options.MatchID; id != "" {
		return tea.Batch(
			b.loadSports(),
			b.startLoading(fmt.Sprintf("Looking up match %s", id)),
			b.findMatch(id),
		)
	}

	return tea.Batch(
		b.loadSports(),
		b.startLoading(fmt.Sprintf("Loading %s matches", b.category)),
		b.loadMatches(b.category),
	)
}
