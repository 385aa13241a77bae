package tui

import (
	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/internal/ui"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/watch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

type sportsLoadedMsg []model.Sport

type matchesLoadedMsg struct {
	category catalog.Category
	matches  []model.Match
}

type matchFoundMsg struct {
	id    string
	match mo.Option[model.Match]
}

type streamsResolvedMsg struct {
	token   watch.Token
	streams []model.Stream
	err     error
}

type embedOpenedMsg struct {
	stream model.Stream
	err    error
}

func (b *statefulBubble) loadSports() tea.Cmd {
	sports := b.app.Sports
	ctx := b.ctx
	return func() tea.Msg {
		return sportsLoadedMsg(sports.List(ctx))
	}
}

func (b *statefulBubble) loadMatches(category catalog.Category) tea.Cmd {
	matches := b.app.Matches
	ctx := b.ctx
	return func() tea.Msg {
		log.Infof("loading %s matches", category)
		return matchesLoadedMsg{category: category, matches: matches.List(ctx, category)}
	}
}

func (b *statefulBubble) findMatch(id string) tea.Cmd {
	resolver := b.app.Resolver
	ctx := b.ctx
	return func() tea.Msg {
		return matchFoundMsg{id: id, match: resolver.FindByID(ctx, id)}
	}
}

// selectSources starts a new selection on the machine and returns the lookup
// for it. The previous lookup is cancelled; its result would be discarded anyway.
func (b *statefulBubble) selectSources(refs []model.SourceRef) tea.Cmd {
	if b.cancel != nil {
		b.cancel()
	}

	token := b.machine.SelectSource(refs...)
	b.awaiting = mo.Some(token)

	ctx, cancel := watch.Deadline(b.ctx, b.timeout)
	b.cancel = cancel

	aggregator := b.app.Aggregator
	return func() tea.Msg {
		defer cancel()

		streams, err := watch.Lookup(ctx, aggregator, refs)
		return streamsResolvedMsg{token: token, streams: streams, err: err}
	}
}

func (b *statefulBubble) openStream(s model.Stream) tea.Cmd {
	opener := b.openURL
	return func() tea.Msg {
		return embedOpenedMsg{stream: s, err: opener(s.EmbedURL)}
	}
}

func notify(i icon.Icon, text string) tea.Cmd {
	return ui.Notify(icon.Get(i) + " " + text)
}
