package cmd

import (
	"strings"

	"github.com/anisan-cli/streamkit/query"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search titles with the default source",
	Args:  cobra.MinimumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		src, err := defaultSource()
		handleErr(err)

		q := strings.Join(args, " ")
		results, err := src.Search(cmd.Context(), q)
		handleErr(err)
		_ = query.Remember(q, 1)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(writeJSON(cmd.OutOrStdout(), results))
			return
		}
		writeResults(cmd.OutOrStdout(), results)
	},
}
