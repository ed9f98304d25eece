// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// Init loads the source list, or the single default source straight away.
func (b *statefulBubble) Init() tea.Cmd {
	if names := viper.GetStringSlice(key.DefaultSources); b.state != historyState && len(names) == 1 {
		p, ok := provider.Get(names[0])
		if !ok {
			b.raiseError(fmt.Errorf("provider %s not found", names[0]))
			return b.loadProviders()
		}

		return tea.Batch(b.loadProviders(), b.startLoading("Initializing source"), b.loadSource(p))
	}

	return tea.Batch(textinput.Blink, b.loadProviders())
}
