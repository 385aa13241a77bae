// Package ui renders short-lived notifications under a bubbletea view.
package ui

import (
	"strings"
	"time"

	"github.com/abouramd/live-stream/style"
	tea "github.com/charmbracelet/bubbletea"
)

// Lifetime is how long a notification stays visible.
var Lifetime = 3 * time.Second

// Notification is the message that shows text in the notifier.
type Notification string

type clearMsg struct {
	at time.Time
}

// Model holds the current notification. The zero value shows nothing.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification(text)
	}
}

// Update shows new notifications and clears them once they expire.
// A clear scheduled for an older notification leaves a newer one in place.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		at := time.Now()
		m.notification = string(msg)
		m.notifiedAt = at
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return clearMsg{at: at}
		})
	case clearMsg:
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current returns the visible notification, or an empty string.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
