package util

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/anisan-cli/streamkit/constant"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalSize returns the size of the terminal attached to stdout.
func TerminalSize() (width, height int, err error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal.
func ClearScreen() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case constant.Windows:
		cmd = exec.Command("cmd", "/c", "cls")
	case constant.Linux, constant.Darwin, constant.Android:
		cmd = exec.Command("tput", "clear")
	default:
		return
	}

	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}

// PrintErasable prints msg on the current line and returns a function that blanks it.
func PrintErasable(msg string) (eraser func()) {
	_, _ = fmt.Fprintf(os.Stdout, "\r%s", msg)
	return func() {
		_, _ = fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", runewidth.StringWidth(msg)))
	}
}
