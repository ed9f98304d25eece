package cmd

import (
	"os"
	"slices"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/config"
	"github.com/anisan-cli/streamkit/style"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables streamkit reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := lo.MapToSlice(config.Default, func(_ string, f config.Field) string {
			return f.Env()
		})
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range envs {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			if present {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Green)(value))
			} else {
				cmd.Printf("%s=%s\n", name(env), style.Fg(color.Red)("unset"))
			}
		}
	},
}
