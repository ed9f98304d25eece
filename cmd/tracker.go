package cmd

import (
	"strings"

	"github.com/anisan-cli/streamkit/tracker"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trackerCmd)

	trackerCmd.Flags().StringP("type", "t", "", "Type the metadata service uses for the title (e.g. TV, MOVIE)")
	trackerCmd.Flags().IntP("year", "y", 0, "Release year of the title")
}

var trackerCmd = &cobra.Command{
	Use:   "tracker [title]",
	Short: "Look a title up in the metadata service",
	Long: `Look a title up in the metadata service and print the MyAnimeList and Anilist identifiers found.
A title the service does not know prints an empty object.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		found := tracker.Find(
			cmd.Context(),
			strings.Join(args, " "),
			lo.Must(cmd.Flags().GetString("type")),
			lo.Must(cmd.Flags().GetInt("year")),
		)
		handleErr(writeJSON(cmd.OutOrStdout(), found))
	},
}
