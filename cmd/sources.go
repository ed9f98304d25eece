package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/util"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage built-in and Lua sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.Flags().BoolP("custom", "c", false, "Display only user-installed custom Lua sources")
	sourcesListCmd.Flags().BoolP("builtin", "b", false, "Display only pre-compiled built-in sources")

	sourcesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays a summary of all registered scraping providers.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available sources",
	Run: func(cmd *cobra.Command, args []string) {
		printHeader := !lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if printHeader {
				cmd.Println(headerStyle(s))
			}
		}

		line := func(p *provider.Provider) {
			if !printHeader {
				cmd.Println(p.Name)
				return
			}
			cmd.Printf("%s %s\n", p.Name, style.Faint(fmt.Sprintf("%s %v", p.Lang, p.Types)))
		}

		printBuiltin := func() {
			h("Builtin:")
			for _, p := range provider.Builtins() {
				line(p)
			}
		}

		printCustom := func() {
			h("Custom:")
			for _, p := range provider.Customs() {
				line(p)
			}
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if printHeader {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom source(s) to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		sources, err := filesystem.API().ReadDir(where.Sources())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, ".lua") {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// sourcesRemoveCmd facilitates the uninstallation of custom Lua sources.
var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove installed Lua sources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesInstallCmd)

	sourcesInstallCmd.Flags().StringP("repository", "r", "", "Repository to download from instead of the configured one")
}

// sourcesInstallCmd downloads Lua adapters from the repository by name.
var sourcesInstallCmd = &cobra.Command{
	Use:   "install [name...]",
	Short: "Install Lua adapters from the sources repository",
	Long: `Download the named Lua adapters from the sources repository into the sources directory.
The shared common.lua is installed along with them.`,
	Args:    cobra.MinimumNArgs(1),
	Example: "  streamkit sources install example",
	Run: func(cmd *cobra.Command, args []string) {
		names := append([]string{"common"}, args...)
		installed, err := provider.UpdateSources(cmd.Context(), lo.Must(cmd.Flags().GetString("repository")), names...)
		handleErr(err)

		if len(installed) == 0 {
			fmt.Printf("%s already installed\n", icon.Get(icon.Success))
			return
		}

		for _, name := range installed {
			fmt.Printf("%s installed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesUpdateCmd)
}

// sourcesUpdateCmd refreshes the installed Lua adapters.
var sourcesUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the installed Lua adapters from the sources repository",
	Run: func(cmd *cobra.Command, args []string) {
		e := util.PrintErasable(fmt.Sprintf("%s Updating sources...", icon.Get(icon.Progress)))
		updated, err := provider.UpdateSources(cmd.Context(), "")
		e()
		handleErr(err)

		if len(updated) == 0 {
			fmt.Printf("%s sources are up to date\n", icon.Get(icon.Success))
			return
		}

		for _, name := range updated {
			fmt.Printf("%s updated %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the new scraping provider")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The base URL of the target website to be scraped")
	sourcesGenCmd.Flags().StringP("lang", "l", "en", "Language code of the site")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a boilerplate Lua provider script.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a new Lua source from the template",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		var author string
		usr, err := user.Current()
		if err == nil {
			author = usr.Username
		} else {
			author = "Anonymous"
		}

		s := struct {
			Name        string
			URL         string
			Lang        string
			Author      string
			SearchFn    string
			LoadFn      string
			LoadLinksFn string
			MainPageFn  string
			SectionsVar string
		}{
			Name:        lo.Must(cmd.Flags().GetString("name")),
			URL:         lo.Must(cmd.Flags().GetString("url")),
			Lang:        lo.Must(cmd.Flags().GetString("lang")),
			Author:      author,
			SearchFn:    constant.SearchFn,
			LoadFn:      constant.LoadFn,
			LoadLinksFn: constant.LoadLinksFn,
			MainPageFn:  constant.MainPageFn,
			SectionsVar: constant.SectionsVar,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    func(n ...int) int { return lo.Max(n) },
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		err = tmpl.Execute(f, s)
		handleErr(err)

		cmd.Println(target)
	},
}
