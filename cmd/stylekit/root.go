package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "stylekit resolves variant tables into utility class strings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", config.DefaultFileName, "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newProgressCmd())
	cmd.AddCommand(newStoriesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
