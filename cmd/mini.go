package cmd

import (
	"github.com/anisan-cli/streamkit/mini"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().BoolP("continue", "c", false, "Continue watching from the history")
}

// miniCmd runs the prompt-driven mode.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch in the mini mode",
	Long:  `Browse and watch with a sequence of simple prompts instead of the full-screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		warnMissingPlayer()

		options := mini.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(mini.Run(cmd.Context(), &options))
	},
}
