package cmd

import (
	"strings"

	"github.com/anisan-cli/streamkit/provider/custom"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("search", "s", "", "Run a search with the script and print the results")
	runCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
}

// runCmd loads a Lua adapter that is not installed, for script development.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Load a local Lua adapter",
	Long: `Load a Lua adapter with the same checks installed adapters go through.
Optionally run a search with it.`,
	Args:    cobra.ExactArgs(1),
	Example: "  streamkit run ./example.lua --search naruto",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := custom.LoadSource(args[0])
		handleErr(err)

		q := strings.TrimSpace(lo.Must(cmd.Flags().GetString("search")))
		if q == "" {
			cmd.Printf("%s (%s) loaded, %d sections\n", src.Name(), src.ID(), len(src.MainPages()))
			return
		}

		results, err := src.Search(cmd.Context(), q)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(writeJSON(cmd.OutOrStdout(), results))
			return
		}
		writeResults(cmd.OutOrStdout(), results)
	},
}
