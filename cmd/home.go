package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/streamkit/source"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(homeCmd)

	homeCmd.Flags().IntP("page", "p", 1, "Page of the section to fetch")
	homeCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
}

var homeCmd = &cobra.Command{
	Use:   "home [section]",
	Short: "List the homepage sections of a source, or the titles of one section",
	Long: `Without arguments the sections of the source homepage are listed.
A section is chosen by its name or by its position in that list.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  streamkit home --source anilibria \"Новое\"",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := defaultSource()
		handleErr(err)

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		sections := src.MainPages()

		if len(args) == 0 {
			if asJson {
				handleErr(writeJSON(cmd.OutOrStdout(), sections))
				return
			}
			for i, s := range sections {
				cmd.Printf("%d %s\n", i, s.Name)
			}
			return
		}

		section, err := findSection(sections, args[0])
		handleErr(err)

		page, err := src.Homepage(cmd.Context(), lo.Must(cmd.Flags().GetInt("page")), section)
		handleErr(err)

		if asJson {
			handleErr(writeJSON(cmd.OutOrStdout(), page))
			return
		}
		writeResults(cmd.OutOrStdout(), page.Items)
	},
}

func findSection(sections []source.MainPageRequest, name string) (source.MainPageRequest, error) {
	if section, ok := lo.Find(sections, func(s source.MainPageRequest) bool {
		return strings.EqualFold(s.Name, name)
	}); ok {
		return section, nil
	}

	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(sections) {
		return sections[i], nil
	}

	return source.MainPageRequest{}, fmt.Errorf("section not found: %s", name)
}
