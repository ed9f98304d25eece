package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/inline"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/query"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search query")
	inlineCmd.Flags().StringP("pick", "p", "", "How to pick a title from the search results")
	inlineCmd.Flags().StringP("episodes", "e", "", "Which episodes of the picked title to keep")
	inlineCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
	inlineCmd.Flags().BoolP("links", "l", false, "Resolve the links of the kept episodes")
	inlineCmd.Flags().Bool("casting", false, "Resolve links suitable for casting")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	lo.Must0(inlineCmd.MarkFlagRequired("query"))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last", "exact", "closest", "index:"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Search, load and resolve without any interaction",
	Long: `Search all default sources, pick a title, load it and optionally resolve its links.

Pickers:
  first - first result
  last - last result
  exact - result named exactly as the query
  closest - result with the name closest to the query
  index:[n] - result at position n (starting from 0)

Episode filters:
  first - first episode
  last - last episode
  all - all episodes
  [number] - the episode with that number (starting from 1)
  [from]-[to] - episodes in the range, both included
  @[substring]@ - episodes whose name contains substring

Without a picker the search results are printed.`,
	Example: `  streamkit inline -q "naruto" -p closest -e 1-3 -l -j`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := inlineSources()
		handleErr(err)

		q := lo.Must(cmd.Flags().GetString("query"))

		var writer io.Writer = cmd.OutOrStdout()
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			f, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		picker := mo.None[inline.ResultPicker]()
		if pick := lo.Must(cmd.Flags().GetString("pick")); pick != "" {
			kind, value, found := strings.Cut(pick, ":")
			if !found {
				value = q
			}
			fn, err := inline.ParseResultPicker(kind, value)
			handleErr(err)
			picker = mo.Some(fn)
		}

		filter := mo.None[inline.EpisodesFilter]()
		if episodes := lo.Must(cmd.Flags().GetString("episodes")); episodes != "" {
			fn, err := inline.ParseEpisodesFilter(episodes)
			handleErr(err)
			filter = mo.Some(fn)
		}

		options := &inline.Options{
			Out:            writer,
			Sources:        sources,
			Json:           lo.Must(cmd.Flags().GetBool("json")),
			Query:          q,
			ResultPicker:   picker,
			EpisodesFilter: filter,
			Links:          lo.Must(cmd.Flags().GetBool("links")),
			IsCasting:      lo.Must(cmd.Flags().GetBool("casting")),
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

func inlineSources() ([]source.Source, error) {
	names := viper.GetStringSlice(key.DefaultSources)
	if len(names) == 0 {
		return nil, errors.New("source not set")
	}

	var sources []source.Source
	for _, name := range names {
		p, ok := provider.Get(name)
		if !ok {
			return nil, fmt.Errorf("source not found: %s", name)
		}

		src, err := p.CreateSource()
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	return sources, nil
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd prints the JSON schema of the inline output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "episode", "title", "output", "links":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
