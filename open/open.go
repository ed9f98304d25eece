// Package open hands URLs to the desktop, either the default handler or a named application.
package open

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anisan-cli/streamkit/constant"
)

// Start opens target with the default handler and returns without waiting.
func Start(target string) error {
	cmd, err := command(context.Background(), target, "")
	if err != nil {
		return err
	}
	return cmd.Start()
}

// RunWith opens target with app and waits for it to exit.
// An empty app means the default handler.
func RunWith(ctx context.Context, target, app string) error {
	cmd, err := command(ctx, target, app)
	if err != nil {
		return err
	}
	return cmd.Run()
}

func command(ctx context.Context, target, app string) (*exec.Cmd, error) {
	var name string
	var args []string

	switch runtime.GOOS {
	case constant.Windows:
		if app == "" {
			name = filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			args = []string{"url.dll,FileProtocolHandler", target}
		} else {
			// cmd treats & as a command separator
			name = "cmd"
			args = []string{"/C", "start", "", app, strings.ReplaceAll(target, "&", "^&")}
		}
	case constant.Darwin:
		name = "open"
		if app != "" {
			args = append(args, "-a", app)
		}
		args = append(args, target)
	case constant.Linux:
		name = "xdg-open"
		if app != "" {
			name = app
		}
		args = []string{target}
	case constant.Android:
		name = "termux-open"
		if app != "" {
			args = append(args, "--choose")
		}
		args = append(args, target)
	default:
		return nil, fmt.Errorf("opening links is not supported on %s", runtime.GOOS)
	}

	return exec.CommandContext(ctx, name, args...), nil
}
