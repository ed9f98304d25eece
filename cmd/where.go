package cmd

import (
	"os"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type wherePath struct {
	name, flag, short string
	path              func() string
	// listed paths are printed when no flag is given
	listed bool
}

var wherePaths = []wherePath{
	{"Config", "config", "c", where.Config, true},
	{"Sources", "sources", "s", where.Sources, true},
	{"Logs", "logs", "l", where.Logs, true},
	{"History", "history", "", where.History, false},
	{"Queries", "queries", "", where.Queries, false},
	{"Tracker", "tracker", "", where.Tracker, false},
	{"Cache", "cache", "", where.Cache, false},
	{"Temp", "temp", "", where.Temp, false},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, p := range wherePaths {
		whereCmd.Flags().BoolP(p.flag, p.short, false, p.name+" path")
		if !p.listed {
			lo.Must0(whereCmd.Flags().MarkHidden(p.flag))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(p wherePath, _ int) string {
		return p.flag
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where streamkit keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(p.flag)) {
				cmd.Println(p.path())
				return
			}
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
		listed := lo.Filter(wherePaths, func(p wherePath, _ int) bool { return p.listed })
		for i, p := range listed {
			if i > 0 {
				cmd.Println()
			}
			cmd.Printf("%s %s\n", headerStyle(p.name+"?"), style.Fg(color.Yellow)("--"+p.flag))
			cmd.Println(p.path())
		}
	},
}
