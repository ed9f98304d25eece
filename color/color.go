// Package color names the terminal colors used by the CLI output.
// Numbers are ANSI 256-color codes, so the user's terminal theme decides the exact shade.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI code or a hex value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	Black  = New("8")

	HiRed    = New("9")
	HiBlue   = New("12")
	HiPurple = New("13")

	// Orange marks the play action.
	Orange = New("#ffb703")
)
