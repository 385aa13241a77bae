// Package style holds small render helpers on top of lipgloss.
package style

import (
	"github.com/abouramd/live-stream/color"
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored starts a style with the given foreground and background. Empty colors are left unset.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	s := New()
	if fg != "" {
		s = s.Foreground(fg)
	}
	if bg != "" {
		s = s.Background(bg)
	}
	return s
}

// Fg renders text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a heading block.
var Title = func(s string) string {
	return Colored(color.New("230"), AccentColor).Bold(true).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), ErrorColor).Bold(true).Padding(0, 1).Render(s)
}

