package tui

import (
	"context"

	"github.com/abouramd/live-stream/app"
	"github.com/abouramd/live-stream/catalog"
	tea "github.com/charmbracelet/bubbletea"
)

// Options selects what the interface opens on.
type Options struct {
	// Category is the listing shown first.
	Category catalog.Category

	// MatchID opens the sources of this match directly.
	MatchID string
}

// Run starts the program and blocks until the user quits.
func Run(ctx context.Context, a *app.App, options *Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bubble := newBubble(ctx, a, options)
	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
