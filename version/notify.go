package version

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer version is released.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/anisan-cli/streamkit/releases/tag/v"+latest),
	)
}
