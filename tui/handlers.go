// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/player"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/query"
	"github.com/anisan-cli/streamkit/source"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type (
	sourceLoadedMsg struct{ src source.Source }
	resultsMsg      struct {
		title   string
		results []*source.SearchResult
	}
	detailMsg struct{ detail *source.Detail }
	linksMsg  struct {
		episode  *source.Episode
		links    *source.Links
		autoplay bool
	}
	resumeMsg struct {
		src    source.Source
		detail *source.Detail
		index  int
	}
	playedMsg struct{ episode *source.Episode }
)

func (b *statefulBubble) loadProviders() tea.Cmd {
	items := lo.Map(provider.All(), func(p *provider.Provider, _ int) list.Item {
		return &listItem{internal: p}
	})
	return b.sourcesC.SetItems(items)
}

func (b *statefulBubble) loadHistory() (tea.Cmd, error) {
	saved, err := history.List()
	if err != nil {
		return nil, err
	}

	items := lo.Map(saved, func(e *history.SavedEpisode, _ int) list.Item {
		return &listItem{internal: e}
	})

	return tea.Batch(b.historyC.SetItems(items), b.loadProviders()), nil
}

func (b *statefulBubble) loadSource(p *provider.Provider) tea.Cmd {
	return func() tea.Msg {
		log.Info("loading source " + p.ID)
		src, err := p.CreateSource()
		if err != nil {
			return err
		}
		return sourceLoadedMsg{src: src}
	}
}

func (b *statefulBubble) loadSections() tea.Cmd {
	items := lo.Map(b.selectedSource.MainPages(), func(r source.MainPageRequest, _ int) list.Item {
		return &listItem{internal: r}
	})
	items = append(items, &listItem{internal: searchItem{}})

	b.sectionsC.Title = b.selectedSource.Name()
	return b.sectionsC.SetItems(items)
}

func (b *statefulBubble) loadHomepage(section source.MainPageRequest) tea.Cmd {
	src := b.selectedSource
	return func() tea.Msg {
		page, err := src.Homepage(b.ctx, 1, section)
		if err != nil {
			return err
		}
		return resultsMsg{title: page.Name, results: page.Items}
	}
}

func (b *statefulBubble) search(q string) tea.Cmd {
	src := b.selectedSource
	return func() tea.Msg {
		results, err := src.Search(b.ctx, q)
		if err != nil {
			return err
		}

		_ = query.Remember(q, 1)
		return resultsMsg{title: fmt.Sprintf("Results for %q", q), results: results}
	}
}

func (b *statefulBubble) loadDetail(url string) tea.Cmd {
	src := b.selectedSource
	return func() tea.Msg {
		detail, err := src.Load(b.ctx, url)
		if err != nil {
			return err
		}
		return detailMsg{detail: detail}
	}
}

// resume loads the title of a history entry with its source.
func (b *statefulBubble) resume(p *provider.Provider, saved *history.SavedEpisode) tea.Cmd {
	return func() tea.Msg {
		src, err := p.CreateSource()
		if err != nil {
			return err
		}

		detail, err := src.Load(b.ctx, saved.TitleURL)
		if err != nil {
			return err
		}
		return resumeMsg{src: src, detail: detail, index: saved.Index}
	}
}

func (b *statefulBubble) loadLinks(episode *source.Episode) tea.Cmd {
	return b.collectLinks(episode, false)
}

// loadLinksAndPlay resolves episode and plays its best link right away.
func (b *statefulBubble) loadLinksAndPlay(episode *source.Episode) tea.Cmd {
	return b.collectLinks(episode, true)
}

func (b *statefulBubble) collectLinks(episode *source.Episode, autoplay bool) tea.Cmd {
	src := b.selectedSource
	return func() tea.Msg {
		links, err := source.CollectLinks(b.ctx, src, episode.Data, false)
		if err != nil {
			return err
		}
		return linksMsg{episode: episode, links: links, autoplay: autoplay}
	}
}

// playLink runs the player outside of the bubbletea loop and saves the episode to history.
func (b *statefulBubble) playLink(link *source.ExtractorLink) tea.Cmd {
	detail, episode := b.selectedDetail, b.selectedEpisode
	name := fmt.Sprintf("%s - %s", detail.Name, episode)
	cmd, err := player.Command(b.ctx, player.Name(), player.FromLink(link, name, b.subtitles))
	if err != nil {
		return func() tea.Msg {
			if err := player.Play(b.ctx, player.FromLink(link, name, b.subtitles)); err != nil {
				return err
			}
			return playedMsg{episode: episode}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return err
		}
		return playedMsg{episode: episode}
	})
}

func (b *statefulBubble) saveHistory(episode *source.Episode) {
	if !viper.GetBool(key.HistorySaveOnPlay) {
		return
	}

	if err := history.Save(b.selectedDetail, episode); err != nil {
		log.Warnf("failed to save history: %s", err)
	}
}
