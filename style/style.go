// Package style wraps lipgloss styles into plain string renderers.
package style

import (
	"github.com/anisan-cli/streamkit/color"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a rendering function that cuts the string at the given display width, adding an ellipsis.
func Truncate(max int) func(string) string {
	return func(s string) string { return truncate.StringWithTail(s, uint(max), "…") }
}

// Wrap returns a rendering function that word-wraps text at the given display width.
func Wrap(width int) func(string) string {
	return func(s string) string { return wordwrap.String(s, width) }
}

// Standard Text Transformation Helpers - these functions apply common typographic styles like bold or italics.
var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a banner in the primary accent colors.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a visually highlighted banner using dominant error status colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that encapsulates a string in a colored, padded tag block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Quality renders a stream resolution badge, brighter for higher resolutions.
func Quality(height int, label string) string {
	switch {
	case height >= 1080:
		return Tag(Base, SuccessColor)(label)
	case height >= 720:
		return Tag(Base, SecondaryColor)(label)
	case height > 0:
		return Tag(Base, WarningColor)(label)
	default:
		return Tag(Text, Surface)(label)
	}
}
