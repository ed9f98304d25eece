// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/internal/ui"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/open"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/query"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	"github.com/atotto/clipboard"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	model, cmd := b.update(msg)
	return model, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case provider.SourcesUpdatedMsg:
		if msg.Err != nil {
			return b, ui.Notify("Update failed: " + msg.Err.Error())
		}
		return b, tea.Batch(b.loadProviders(), ui.Notify(util.Quantify(len(msg.Updated), "source", "sources")+" updated"))
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case sourceLoadedMsg:
		if b.state != loadingState {
			return b, nil
		}
		b.stopLoading()
		b.selectedSource = msg.src
		b.newState(sectionsState)
		return b, b.loadSections()
	case resumeMsg:
		if b.state != loadingState {
			return b, nil
		}
		b.selectedSource = msg.src
		b.resumeIndex = msg.index
		return b.update(detailMsg{detail: msg.detail})
	case resultsMsg:
		if b.state != loadingState {
			return b, nil
		}
		b.stopLoading()
		b.resultsC.Title = msg.title
		b.newState(resultsState)
		b.resultsC.ResetSelected()
		return b, b.resultsC.SetItems(lo.Map(msg.results, func(r *source.SearchResult, _ int) list.Item {
			return &listItem{internal: r}
		}))
	case detailMsg:
		if b.state != loadingState {
			return b, nil
		}
		return b, b.showDetail(msg.detail)
	case linksMsg:
		if b.state != loadingState {
			return b, nil
		}
		return b, b.showLinks(msg)
	case playedMsg:
		b.saveHistory(msg.episode)
		return b, ui.Notify("Watched " + msg.episode.String())
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.forceQuit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back) && b.state != errorState:
			if b.state == searchState {
				b.inputC.SetValue("")
			}

			if b.state == loadingState {
				b.stopLoading()
			}

			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.previousState()
			return b, nil
		}
	}

	switch b.state {
	case loadingState:
		return b.updateLoading(msg)
	case historyState:
		return b.updateHistory(msg)
	case sourcesState:
		return b.updateSources(msg)
	case sectionsState:
		return b.updateSections(msg)
	case searchState:
		return b.updateSearch(msg)
	case resultsState:
		return b.updateResults(msg)
	case episodesState:
		return b.updateEpisodes(msg)
	case linksState:
		return b.updateLinks(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) showDetail(detail *source.Detail) tea.Cmd {
	b.stopLoading()
	b.selectedDetail = detail

	episodes := detail.Episodes
	if viper.GetBool(key.TUIReverseEpisodes) {
		episodes = lo.Reverse(append([]*source.Episode(nil), episodes...))
	}

	b.episodesC.Title = detail.Name
	b.newState(episodesState)
	cmd := b.episodesC.SetItems(lo.Map(episodes, func(e *source.Episode, _ int) list.Item {
		return &listItem{internal: e}
	}))

	b.episodesC.ResetSelected()
	if b.resumeIndex > 0 {
		if _, i, ok := lo.FindIndexOf(episodes, func(e *source.Episode) bool {
			return int(e.Index) == b.resumeIndex
		}); ok {
			b.episodesC.Select(i)
		}
		b.resumeIndex = 0
	}

	if len(detail.Episodes) == 0 {
		return tea.Batch(cmd, b.episodesC.NewStatusMessage("No episodes"))
	}
	return cmd
}

func (b *statefulBubble) showLinks(msg linksMsg) tea.Cmd {
	b.stopLoading()
	b.selectedEpisode = msg.episode
	b.subtitles = msg.links.Subtitles

	b.linksC.Title = fmt.Sprintf("%s - %s", b.selectedDetail.Name, msg.episode)
	b.newState(linksState)
	b.linksC.ResetSelected()
	cmd := b.linksC.SetItems(lo.Map(msg.links.Links, func(l *source.ExtractorLink, _ int) list.Item {
		return &listItem{internal: l}
	}))

	if best := source.BestLink(msg.links.Links); msg.autoplay && best != nil {
		return tea.Batch(cmd, b.playLink(best))
	}
	return cmd
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		saved, isSaved := b.selected(&b.historyC).(*history.SavedEpisode)

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && isSaved:
			p, ok := provider.Get(saved.SourceID)
			if !ok {
				b.raiseError(fmt.Errorf("source %s is not installed", saved.SourceID))
				return b, nil
			}
			return b, tea.Batch(b.startLoading("Loading "+saved.Title), b.resume(p, saved))
		case bubblesKey.Matches(msg, b.keymap.remove) && isSaved:
			if err := history.Remove(saved); err != nil {
				b.raiseError(err)
				return b, nil
			}
			b.historyC.RemoveItem(b.historyC.Index())
			return b, ui.Notify("Removed " + saved.Title)
		}
	}

	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSources(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if p, ok := b.selected(&b.sourcesC).(*provider.Provider); ok {
				return b, tea.Batch(b.startLoading("Initializing source"), b.loadSource(p))
			}
		case bubblesKey.Matches(msg, b.keymap.update):
			return b, tea.Batch(ui.Notify("Updating sources..."), provider.UpdateSourcesCmd(b.ctx))
		}
	}

	b.sourcesC, cmd = b.sourcesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSections(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			switch item := b.selected(&b.sectionsC).(type) {
			case source.MainPageRequest:
				return b, tea.Batch(b.startLoading("Loading "+item.Name), b.loadHomepage(item))
			case searchItem:
				b.newState(searchState)
				return b, nil
			}
		}
	}

	b.sectionsC, cmd = b.sectionsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.inputC.CursorEnd()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			q := b.inputC.Value()
			if q == "" {
				return b, nil
			}
			return b, tea.Batch(b.startLoading(fmt.Sprintf("Searching %q", q)), b.search(q))
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)
	b.searchSuggestion = query.Suggest(b.inputC.Value())
	return b, cmd
}

func (b *statefulBubble) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if r, ok := b.selected(&b.resultsC).(*source.SearchResult); ok {
				return b, tea.Batch(b.startLoading("Loading "+r.Name), b.loadDetail(r.URL))
			}
		}
	}

	b.resultsC, cmd = b.resultsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateEpisodes(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		episode, isEpisode := b.selected(&b.episodesC).(*source.Episode)

		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm) && isEpisode:
			return b, tea.Batch(b.startLoading("Resolving links"), b.loadLinks(episode))
		case bubblesKey.Matches(msg, b.keymap.play) && isEpisode:
			return b, tea.Batch(b.startLoading("Resolving links"), b.loadLinksAndPlay(episode))
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if err := open.Start(b.selectedDetail.URL); err != nil {
				b.raiseError(err)
			}
			return b, nil
		}
	}

	b.episodesC, cmd = b.episodesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateLinks(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		link, isLink := b.selected(&b.linksC).(*source.ExtractorLink)

		switch {
		case (bubblesKey.Matches(msg, b.keymap.play) || bubblesKey.Matches(msg, b.keymap.confirm)) && isLink:
			return b, b.playLink(link)
		case bubblesKey.Matches(msg, b.keymap.copyLink) && isLink:
			if err := clipboard.WriteAll(link.URL); err != nil {
				return b, ui.Notify("Copy failed: " + err.Error())
			}
			return b, ui.Notify("Copied " + link.Quality.String() + " link")
		}
	}

	b.linksC, cmd = b.linksC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

// selected returns the model behind the focused item of l.
func (b *statefulBubble) selected(l *list.Model) any {
	item, ok := l.SelectedItem().(*listItem)
	if !ok {
		return nil
	}
	return item.internal
}
