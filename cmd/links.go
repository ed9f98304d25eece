package cmd

import (
	"github.com/anisan-cli/streamkit/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(linksCmd)

	linksCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
	linksCmd.Flags().Bool("casting", false, "Resolve links suitable for casting")
}

var linksCmd = &cobra.Command{
	Use:   "links [data]",
	Short: "Resolve the playable links of an episode",
	Long: `Resolve the playable links of an episode.
The argument is the episode data printed by "load --json".`,
	Args:    cobra.ExactArgs(1),
	Example: `  streamkit links "[480p]https://cdn.example/1.m3u8,[720p]https://cdn.example/2.m3u8"`,
	Run: func(cmd *cobra.Command, args []string) {
		src, err := defaultSource()
		handleErr(err)

		links, err := source.CollectLinks(cmd.Context(), src, args[0], lo.Must(cmd.Flags().GetBool("casting")))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(writeJSON(cmd.OutOrStdout(), links))
			return
		}
		writeLinks(cmd.OutOrStdout(), links)
	},
}
