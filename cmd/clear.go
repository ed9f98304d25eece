package cmd

import (
	"fmt"

	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/util"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name, flag, short string
	path              func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", "c", where.Cache},
	{"history file", "history", "s", where.History},
	{"queries history", "queries", "q", where.Queries},
	{"tracker cache", "tracker", "t", where.Tracker},
	{"responses cache", "responses", "r", where.Responses},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.flag, t.short, false, "clear "+t.name)
	}
	clearCmd.Flags().BoolP("all", "a", false, "clear everything above")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear caches and history",
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		targets := lo.Filter(clearTargets, func(t clearTarget, _ int) bool {
			return all || lo.Must(cmd.Flags().GetBool(t.flag))
		})

		if len(targets) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, t := range targets {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.name))
			err := util.Delete(t.path())
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(t.name))
		}
	},
}
