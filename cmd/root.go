// Package cmd implements the command-line interface for streamkit.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/constant"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/tui"
	"github.com/anisan-cli/streamkit/util"
	"github.com/anisan-cli/streamkit/version"
	"github.com/anisan-cli/streamkit/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Save watched episodes to the history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnPlay, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Default sources to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", completionSources))
	lo.Must0(viper.BindPFlag(key.DefaultSources, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.Flags().BoolP("continue", "c", false, "Continue watching from the history")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(context.Background())
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

func completionSources(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(provider.All(), func(p *provider.Provider, _ int) string {
		return p.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

// rootCmd is the entry point of streamkit. Without a subcommand it starts the TUI.
var rootCmd = &cobra.Command{
	Use:   constant.Streamkit,
	Short: "Browse and watch anime and drama from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse and watch anime and drama from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		warnMissingPlayer()

		options := tui.Options{
			Continue: lo.Must(cmd.Flags().GetBool("continue")),
		}
		handleErr(tui.Run(cmd.Context(), &options))
	},
}

// Execute runs the command tree. An interrupt cancels the context of the running command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
