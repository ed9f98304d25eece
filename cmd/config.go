package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/anisan-cli/streamkit/color"
	"github.com/anisan-cli/streamkit/config"
	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
}

// configKey takes the key from the first argument, falling back to the --key flag.
func configKey(cmd *cobra.Command, args []string) (config.Field, error) {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}
	if k == "" {
		return config.Field{}, errors.New("key is required as an argument or --key flag")
	}

	field, err := config.Lookup(k)
	var unknown *config.UnknownKeyError
	if errors.As(err, &unknown) {
		return field, fmt.Errorf("unknown key %s, did you mean %s?", style.Fg(color.Red)(unknown.Key), style.Fg(color.Yellow)(unknown.Closest))
	}
	return field, err
}

func success(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the output as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)

	configInfoCmd.SetOut(os.Stdout)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the configuration fields",
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)

		if keys := lo.Must(cmd.Flags().GetStringSlice("key")); len(keys) > 0 {
			fields = fields[:0]
			for _, k := range keys {
				field, err := config.Lookup(k)
				handleErr(err)
				fields = append(fields, field)
			}
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(field.Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to set")
	configSetCmd.Flags().StringSliceP("value", "v", []string{}, "Value to set, repeat it for lists")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Set a configuration value",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := configKey(cmd, args)
		handleErr(err)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		v, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, v)
		handleErr(config.Write())
		success("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to print")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print a configuration value",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := configKey(cmd, args)
		handleErr(err)

		fmt.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to reset")
	configResetCmd.Flags().BoolP("all", "a", false, "Reset every key")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:               "reset [key]",
	Short:             "Reset configuration values to their defaults",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(config.Write())
			success("reset all config values")
			return
		}

		field, err := configKey(cmd, args)
		handleErr(err)

		viper.Set(field.Key, field.Value)
		handleErr(config.Write())
		success("reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Overwrite the existing file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the current configuration to the config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			if err := filesystem.API().Remove(config.File()); err != nil && !os.IsNotExist(err) {
				handleErr(err)
			}
		}

		handleErr(viper.SafeWriteConfigAs(config.File()))
		success("wrote config to %s", config.File())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Delete the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(filesystem.API().Remove(config.File()))
		success("deleted config")
	},
}
