package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(cmd, root, func(c *theme.Cycler) error { return nil })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "Advance to the next theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(cmd, root, func(c *theme.Cycler) error {
				_, err := c.Cycle()
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Select a theme by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withThemes(cmd, root, func(c *theme.Cycler) error {
				return c.Set(args[0])
			})
		},
	})

	return cmd
}

// withThemes applies fn to the persisted cycler and prints the resulting
// theme. The CLI has no render cycle, so the cycler is mounted right away.
func withThemes(cmd *cobra.Command, root *rootFlags, fn func(*theme.Cycler) error) error {
	app, err := loadApp(cmd, root)
	if err != nil {
		return err
	}

	cycler, err := app.themes()
	if err != nil {
		return err
	}

	if err := fn(cycler); err != nil {
		return newCommandError("change theme", cycler.Current(), err, fmt.Sprintf("Available themes: %v", cycler.Themes()))
	}

	cycler.Mount()
	current := cycler.Current()
	if resolved := cycler.Display(); resolved != current {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", current, resolved)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), current)
	return nil
}
