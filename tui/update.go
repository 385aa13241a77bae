package tui

import (
	"fmt"

	"github.com/abouramd/live-stream/catalog"
	"github.com/abouramd/live-stream/icon"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/log"
	"github.com/abouramd/live-stream/model"
	"github.com/abouramd/live-stream/util"
	"github.com/abouramd/live-stream/watch"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if uiCmd := b.notifier.Update(msg); uiCmd != nil {
		cmd = uiCmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case sportsLoadedMsg:
		return b, tea.Batch(cmd, b.onSportsLoaded(msg))
	case matchesLoadedMsg:
		return b, tea.Batch(cmd, b.onMatchesLoaded(msg))
	case matchFoundMsg:
		return b, tea.Batch(cmd, b.onMatchFound(msg))
	case streamsResolvedMsg:
		return b, tea.Batch(cmd, b.onStreamsResolved(msg))
	case embedOpenedMsg:
		if msg.err != nil {
			log.WithFields(log.Fields{"url": msg.stream.EmbedURL, "err": msg.err}).Error("opening embed failed")
			return b, tea.Batch(cmd, notify(icon.Fail, msg.err.Error()))
		}
		return b, tea.Batch(cmd, notify(icon.Link, "Opened "+msg.stream.String()))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		if bubblesKey.Matches(msg, b.keymap.back) {
			if l := b.currentList(); l != nil && l.FilterState() != list.Unfiltered {
				break
			}

			if b.state == loadingState {
				b.awaiting = mo.None[watch.Token]()
				b.stopLoading()
			}

			b.previousState()
			return b, cmd
		}
	}

	var stateCmd tea.Cmd
	switch b.state {
	case loadingState:
		b.spinnerC, stateCmd = b.spinnerC.Update(msg)
	case sportsState:
		stateCmd = b.updateSports(msg)
	case matchesState:
		stateCmd = b.updateMatches(msg)
	case sourcesState:
		stateCmd = b.updateSources(msg)
	case streamsState:
		stateCmd = b.updateStreams(msg)
	case errorState:
		stateCmd = b.updateError(msg)
	}

	return b, tea.Batch(cmd, stateCmd)
}

func (b *statefulBubble) currentList() *list.Model {
	switch b.state {
	case sportsState:
		return &b.sportsC
	case matchesState:
		return &b.matchesC
	case sourcesState:
		return &b.sourcesC
	case streamsState:
		return &b.streamsC
	default:
		return nil
	}
}

func (b *statefulBubble) onSportsLoaded(sports []model.Sport) tea.Cmd {
	items := make([]list.Item, 0, len(catalog.Fixed)+len(sports))
	for _, c := range catalog.Fixed {
		items = append(items, &listItem{internal: c})
	}
	for _, s := range sports {
		items = append(items, &listItem{internal: s})
	}

	return b.sportsC.SetItems(items)
}

func (b *statefulBubble) onMatchesLoaded(msg matchesLoadedMsg) tea.Cmd {
	if msg.category != b.category {
		return nil
	}

	items := make([]list.Item, len(msg.matches))
	for i, m := range msg.matches {
		items[i] = &listItem{internal: m}
	}

	cmd := b.matchesC.SetItems(items)
	b.matchesC.Title = "Matches · " + b.categoryTitle(msg.category)
	b.matchesC.ResetSelected()

	if b.state == loadingState {
		b.stopLoading()
		b.newState(matchesState)
	}

	return cmd
}

func (b *statefulBubble) onMatchFound(msg matchFoundMsg) tea.Cmd {
	if b.state != loadingState {
		return nil
	}

	b.stopLoading()

	match, ok := msg.match.Get()
	if !ok {
		b.raiseError(fmt.Errorf("%w: %s", catalog.ErrMatchNotFound, msg.id))
		return nil
	}

	cmd := b.selectMatch(match)
	b.newState(sourcesState)
	return cmd
}

func (b *statefulBubble) onStreamsResolved(msg streamsResolvedMsg) tea.Cmd {
	var applied bool
	if msg.err != nil {
		applied = b.machine.Fail(msg.token, msg.err)
	} else {
		applied = b.machine.Resolve(msg.token, msg.streams)
	}

	if !applied {
		log.WithFields(log.Fields{"token": msg.token}).Debug("discarding stale stream lookup")
		return nil
	}

	awaited, ok := b.awaiting.Get()
	if !ok || awaited != msg.token || b.state != loadingState {
		return nil
	}

	b.awaiting = mo.None[watch.Token]()
	b.stopLoading()

	current := b.machine.State()
	if current.Kind == watch.Failed {
		b.raiseError(current.Err)
		return nil
	}

	cmd := b.syncStreams()
	b.newState(streamsState)
	return cmd
}

func (b *statefulBubble) selectMatch(match model.Match) tea.Cmd {
	b.selectedMatch = mo.Some(match)

	items := make([]list.Item, 0, len(match.Sources)+1)
	if len(match.Sources) > 1 {
		items = append(items, &listItem{internal: allSources(match.Sources)})
	}
	for _, ref := range match.Sources {
		items = append(items, &listItem{internal: ref})
	}

	b.sourcesC.Title = match.Versus()
	b.sourcesC.ResetSelected()
	return b.sourcesC.SetItems(items)
}

// syncStreams renders the machine's streams, marking the active one.
func (b *statefulBubble) syncStreams() tea.Cmd {
	current := b.machine.State()

	items := make([]list.Item, len(current.Streams))
	for i, s := range current.Streams {
		items[i] = &listItem{
			internal: s,
			marked:   current.Kind == watch.Chosen && s.EmbedURL == current.ActiveEmbedURL,
		}
	}

	b.streamsC.Title = fmt.Sprintf("Streams · %s", util.Quantify(len(current.Sources), "source", "sources"))
	return b.streamsC.SetItems(items)
}

func (b *statefulBubble) openCategory(category catalog.Category) tea.Cmd {
	b.category = category
	return tea.Batch(
		b.startLoading(fmt.Sprintf("Loading %s matches", b.categoryTitle(category))),
		b.loadMatches(category),
	)
}

func (b *statefulBubble) categoryTitle(category catalog.Category) string {
	if title, ok := categoryTitles[category]; ok {
		return title
	}

	if id, ok := category.SportID(); ok {
		name := id
		for _, item := range b.sportsC.Items() {
			if sport, ok := item.(*listItem).internal.(model.Sport); ok && sport.ID == id {
				name = sport.String()
				break
			}
		}
		if category.Popular() {
			return name + ", popular"
		}
		return name
	}

	return category.String()
}

func (b *statefulBubble) updateSports(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !b.sportsC.SettingFilter() {
		selected, _ := b.sportsC.SelectedItem().(*listItem)

		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.confirm) && selected != nil:
			switch e := selected.internal.(type) {
			case catalog.Category:
				return b.openCategory(e)
			case model.Sport:
				return b.openCategory(catalog.SportCategory(e.ID, false))
			}
		case bubblesKey.Matches(keyMsg, b.keymap.popular) && selected != nil:
			switch e := selected.internal.(type) {
			case catalog.Category:
				if popular := catalog.Category(e.String() + "/popular"); !e.Popular() && popular.Valid() {
					return b.openCategory(popular)
				}
				return b.openCategory(e)
			case model.Sport:
				return b.openCategory(catalog.SportCategory(e.ID, true))
			}
		case bubblesKey.Matches(keyMsg, b.keymap.refresh):
			return tea.Batch(b.loadSports(), b.sportsC.NewStatusMessage("Refreshing sports"))
		}
	}

	b.sportsC, cmd = b.sportsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateMatches(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !b.matchesC.SettingFilter() {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.confirm):
			if selected, ok := b.matchesC.SelectedItem().(*listItem); ok {
				if match, ok := selected.internal.(model.Match); ok {
					cmd = b.selectMatch(match)
					b.newState(sourcesState)
					return cmd
				}
			}
		case bubblesKey.Matches(keyMsg, b.keymap.refresh):
			return tea.Batch(b.loadMatches(b.category), b.matchesC.NewStatusMessage("Refreshing matches"))
		}
	}

	b.matchesC, cmd = b.matchesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateSources(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !b.sourcesC.SettingFilter() {
		if bubblesKey.Matches(keyMsg, b.keymap.confirm) {
			if selected, ok := b.sourcesC.SelectedItem().(*listItem); ok {
				var refs []model.SourceRef
				switch e := selected.internal.(type) {
				case allSources:
					refs = e
				case model.SourceRef:
					refs = []model.SourceRef{e}
				}

				if len(refs) > 0 {
					lookup := b.selectSources(refs)
					status := fmt.Sprintf("Finding streams from %s", util.Quantify(len(refs), "source", "sources"))
					return tea.Batch(b.startLoading(status), lookup)
				}
			}
		}
	}

	b.sourcesC, cmd = b.sourcesC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateStreams(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !b.streamsC.SettingFilter() {
		switch {
		case bubblesKey.Matches(keyMsg, b.keymap.watch):
			selected, ok := b.streamsC.SelectedItem().(*listItem)
			if !ok {
				break
			}

			s, ok := selected.internal.(model.Stream)
			if !ok || !b.machine.SelectStream(s) {
				break
			}

			cmd = b.syncStreams()
			if viper.GetBool(key.WatchOpenOnSelect) {
				return tea.Batch(cmd, b.openStream(s))
			}
			return tea.Batch(cmd, notify(icon.Mark, "Selected "+s.String()))
		case bubblesKey.Matches(keyMsg, b.keymap.openURL):
			if active, ok := b.machine.State().Active(); ok {
				return b.openStream(active)
			}
			return notify(icon.Question, "No stream chosen yet")
		case bubblesKey.Matches(keyMsg, b.keymap.refresh):
			refs := b.machine.State().Sources
			if len(refs) == 0 {
				break
			}
			lookup := b.selectSources(refs)
			b.statesHistory.Pop()
			b.setState(sourcesState)
			return tea.Batch(b.startLoading("Refreshing streams"), lookup)
		}
	}

	b.streamsC, cmd = b.streamsC.Update(msg)
	return cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && bubblesKey.Matches(keyMsg, b.keymap.quit) {
		return tea.Quit
	}
	return nil
}
