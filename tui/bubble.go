// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/internal/ui"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble encapsulates the application state, component models and workflow tracking.
type statefulBubble struct {
	ctx context.Context

	state         state
	statesHistory util.Stack[state]
	loading       bool

	keymap *statefulKeymap

	// components
	spinnerC  spinner.Model
	inputC    textinput.Model
	historyC  list.Model
	sourcesC  list.Model
	sectionsC list.Model
	resultsC  list.Model
	episodesC list.Model
	linksC    list.Model
	helpC     help.Model

	selectedSource  source.Source
	selectedDetail  *source.Detail
	selectedEpisode *source.Episode
	subtitles       []*source.Subtitle

	// resumeIndex is the episode to focus once a history entry is loaded.
	resumeIndex int

	progressStatus string
	lastError      error

	width, height    int
	searchSuggestion mo.Option[string]
	notifier         *ui.Model

	options *Options
}

// raiseError dispatches a terminal error and transitions the application to the failure view.
func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.stopLoading()
	b.newState(errorState)
}

// setState performs a synchronous transition of both the application workflow and its associated keymap.
func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, recording the previous state in the navigation history when appropriate.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	// Do not push these states to history
	if !lo.Contains([]state{
		loadingState,
		errorState,
	}, b.state) {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

// previousState restores the application to its immediate predecessor in the navigation stack.
func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		s := b.statesHistory.Pop()
		b.setState(s)
	}
}

func (b *statefulBubble) lists() []*list.Model {
	return []*list.Model{&b.historyC, &b.sourcesC, &b.sectionsC, &b.resultsC, &b.episodesC, &b.linksC}
}

// resize propagates terminal dimension changes to all child component models.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range b.lists() {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
}

func (b *statefulBubble) startLoading(status string) tea.Cmd {
	b.loading = true
	b.progressStatus = status
	b.newState(loadingState)
	return b.spinnerC.Tick
}

func (b *statefulBubble) stopLoading() {
	b.loading = false
	b.progressStatus = ""
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	keymap := newStatefulKeymap()
	bubble := statefulBubble{
		ctx:           ctx,
		statesHistory: util.Stack[state]{},
		keymap:        keymap,
		notifier:      &ui.Model{},
		options:       options,
	}

	makeList := func(title string, description bool, titleColor lipgloss.Color) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = description
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(style.AccentColor).
			Foreground(style.AccentColor).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.NoItems = paddingStyle
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(titleColor).Padding(0, 1)
		listC.StatusMessageLifetime = time.Hour * 999
		listC.SetFilteringEnabled(false)
		listC.SetShowPagination(false)
		listC.SetShowStatusBar(false)

		return listC
	}

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = fmt.Sprintf("Search (v%s)", constant.Version)
	bubble.inputC.CharLimit = 60
	bubble.inputC.Prompt = "> "

	bubble.historyC = makeList("History", true, style.Yellow)
	bubble.sourcesC = makeList("Sources", true, style.AccentColor)
	bubble.sectionsC = makeList("Homepage", false, style.Lavender)
	bubble.resultsC = makeList("Results", true, style.Lavender)
	bubble.episodesC = makeList("Episodes", true, style.Green)
	bubble.linksC = makeList("Links", true, style.Red)

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	bubble.inputC.Focus()

	return &bubble
}
