package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		defer version.Notify(cmd.Context())

		rows := [][2]string{
			{"Version", constant.Version},
			{"Git Commit", constant.Revision},
			{"Build Date", strings.TrimSpace(constant.BuiltAt)},
			{"Built By", constant.BuiltBy},
			{"Platform", runtime.GOOS + "/" + runtime.GOARCH},
		}

		cmd.Printf("%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Streamkit))
		for _, row := range rows {
			cmd.Printf("  %s %s\n", style.Faint(fmt.Sprintf("%-12s", row[0])), style.Bold(row[1]))
		}
	},
}
