// Package mini implements a prompt-driven front-end: pick a source, find a title, play episodes.
package mini

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
)

var (
	truncateAt = 100
)

type Options struct {
	// Continue starts from the watch history.
	Continue bool
}

type mini struct {
	ctx context.Context

	width, height int

	state         state
	statesHistory util.Stack[state]

	selectedSource source.Source

	cachedResults map[string][]*source.SearchResult
	cachedDetails map[string]*source.Detail

	query            string
	section          source.MainPageRequest
	selectedResult   *source.SearchResult
	selectedDetail   *source.Detail
	selectedEpisodes []*source.Episode
}

func newMini(ctx context.Context) *mini {
	return &mini{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		cachedResults: make(map[string][]*source.SearchResult),
		cachedDetails: make(map[string]*source.Detail),
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

// newState moves to s, remembering the current state for previousState.
// Playback is never returned to.
func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	if m.state != 0 && m.state != episodePlayState {
		m.statesHistory.Push(m.state)
	}

	m.setState(s)
}

func Run(ctx context.Context, options *Options) error {
	m := newMini(ctx)
	m.state = sourceSelectState
	if options.Continue {
		m.state = historySelectState
	}

	if w, h, err := util.TerminalSize(); err == nil {
		m.width, m.height = w, h
		truncateAt = w
	}

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case historySelectState:
		return m.handleHistorySelectState()
	case sourceSelectState:
		return m.handleSourceSelectState()
	case modeSelectState:
		return m.handleModeSelectState()
	case sectionSelectState:
		return m.handleSectionSelectState()
	case searchState:
		return m.handleSearchState()
	case resultSelectState:
		return m.handleResultSelectState()
	case episodeSelectState:
		return m.handleEpisodeSelectState()
	case episodePlayState:
		return m.handleEpisodePlayState()
	}

	return nil
}
