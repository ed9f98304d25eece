// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/style"
	"github.com/charmbracelet/lipgloss"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case historyState:
		output = listExtraPaddingStyle.Render(b.historyC.View())
	case sourcesState:
		output = listExtraPaddingStyle.Render(b.sourcesC.View())
	case sectionsState:
		output = listExtraPaddingStyle.Render(b.sectionsC.View())
	case searchState:
		output = b.viewSearch()
	case resultsState:
		output = listExtraPaddingStyle.Render(b.resultsC.View())
	case episodesState:
		output = listExtraPaddingStyle.Render(b.episodesC.View())
	case linksState:
		output = listExtraPaddingStyle.Render(b.linksC.View())
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			style.Truncate(b.width)(b.spinnerC.View() + " " + b.progressStatus),
		},
	)
}

func (b *statefulBubble) viewSearch() string {
	title := "Search"
	if b.selectedSource != nil {
		title = "Search " + b.selectedSource.Name()
	}

	lines := []string{
		style.Title(title),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.searchSuggestion.Get(); ok && suggestion != b.inputC.Value() {
		lines = append(lines, "", style.Faint(fmt.Sprintf("%s %s", icon.Get(icon.Search), suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	errorMsg := style.Wrap(b.width)(errorStyle.Render(b.lastError.Error()))
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
