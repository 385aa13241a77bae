package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/style"
)

// prompter asks the user to pick one of options and returns its index.
type prompter interface {
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct {
	pageSize int
}

func (s surveyPrompter) Select(message string, options []string) (int, error) {
	var index int
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: s.pageSize,
	}

	if err := survey.AskOne(prompt, &index); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return -1, errInterrupted
		}
		return -1, err
	}

	return index, nil
}

var errInterrupted = errors.New("interrupted")

type bind struct {
	label string
}

func (b *bind) eq(other *bind) bool {
	return b == other
}

var (
	back    = &bind{label: "← Back"}
	refresh = &bind{label: "↻ Refresh"}
	again   = &bind{label: "↻ Search again"}
	quit    = &bind{label: "✕ Quit"}
)

// menu shows items followed by binds. Either a bind or an item is returned.
// Interrupting the prompt selects quit.
func menu[T fmt.Stringer](p prompter, message string, items []T, binds ...*bind) (*bind, T, error) {
	var zero T

	binds = append(binds, quit)
	options := make([]string, 0, len(items)+len(binds))
	for _, item := range items {
		options = append(options, item.String())
	}
	for _, b := range binds {
		options = append(options, b.label)
	}

	index, err := p.Select(message, options)
	if errors.Is(err, errInterrupted) {
		return quit, zero, nil
	}
	if err != nil {
		return nil, zero, err
	}

	if index < 0 || index >= len(options) {
		return nil, zero, fmt.Errorf("selection %d out of range", index)
	}

	if index >= len(items) {
		return binds[index-len(items)], zero, nil
	}

	return nil, items[index], nil
}

func (m *mini) title(text string) {
	_, _ = fmt.Fprintln(m.out, style.Bold(style.Fg(style.AccentColor)(text)))
}

func (m *mini) fail(text string) {
	_, _ = fmt.Fprintln(m.out, style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+text))
}

func (m *mini) info(i icon.Icon, text string) {
	_, _ = fmt.Fprintln(m.out, icon.Get(i)+" "+text)
}

// progress prints text on the current line and returns a func that erases it.
func (m *mini) progress(text string) (erase func()) {
	line := icon.Get(icon.Progress) + " " + text
	_, _ = fmt.Fprintf(m.out, "\r%s", line)
	return func() {
		_, _ = fmt.Fprintf(m.out, "\r%*s\r", len(line), "")
	}
}
