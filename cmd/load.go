package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
}

var loadCmd = &cobra.Command{
	Use:   "load [url]",
	Short: "Load the detail page of a title with its episodes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := defaultSource()
		handleErr(err)

		detail, err := src.Load(cmd.Context(), args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(writeJSON(cmd.OutOrStdout(), detail))
			return
		}
		writeDetail(cmd.OutOrStdout(), detail)
	},
}
