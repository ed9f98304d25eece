package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/player"
	"github.com/anisan-cli/streamkit/style"
	"github.com/charmbracelet/lipgloss"
)

// warnMissingPlayer prints a notice when the configured player is not in PATH.
// Playback then falls back to the system opener.
func warnMissingPlayer() {
	name := player.Name()
	if _, err := exec.LookPath(name); err == nil {
		return
	}

	var installCmd string
	switch runtime.GOOS {
	case constant.Darwin:
		installCmd = "brew install " + name
	case constant.Linux:
		installCmd = "sudo apt install " + name
	case constant.Windows:
		installCmd = "scoop install " + name
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Player not found", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%q was not found in your PATH, links will be opened with the system default application.", name))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			body,
			suggestion,
		),
	))
}
