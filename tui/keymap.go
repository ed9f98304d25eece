// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	acceptSearchSuggestion,
	search,
	play,
	copyLink,
	openURL,
	remove,
	update,
	back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		acceptSearchSuggestion: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept search suggestion"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp(style.Fg(color.Orange)("p"), style.Fg(color.Orange)("play")),
		),
		copyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		openURL: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open url"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
		update: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "update sources"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit, k.back))
	case historyState:
		return to2(h(k.confirm, k.remove, k.back))
	case sourcesState:
		return to2(h(withDescription(k.confirm, "use source"), k.update))
	case sectionsState:
		return to2(h(withDescription(k.confirm, "open section"), k.search, k.back))
	case searchState:
		return to2(h(k.confirm, k.acceptSearchSuggestion, k.back, k.forceQuit))
	case resultsState:
		return to2(h(k.confirm, k.search, k.back))
	case episodesState:
		return h(withDescription(k.confirm, "links"), k.play, k.back), h(withDescription(k.confirm, "links"), k.play, k.openURL, k.back)
	case linksState:
		return to2(h(k.play, k.copyLink, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:             k.up,
		CursorDown:           k.down,
		NextPage:             k.right,
		PrevPage:             k.left,
		GoToStart:            k.top,
		GoToEnd:              k.bottom,
		ClearFilter:          k.back,
		CancelWhileFiltering: k.back,
		AcceptWhileFiltering: k.confirm,
		ShowFullHelp:         k.showHelp,
		CloseFullHelp:        k.showHelp,
		Quit:                 k.quit,
		ForceQuit:            k.forceQuit,
	}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
