// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Continue bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)

	if options.Continue {
		if _, err := bubble.loadHistory(); err != nil {
			return err
		}
		bubble.newState(historyState)
	} else {
		bubble.newState(sourcesState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
