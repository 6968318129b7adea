package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newStoriesCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Browse every component and its variants interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("launch stories", "interactive catalog", errNotTerminal, "Run stories from an interactive terminal, or use 'stylekit list'.")
			}
			return runStories(cmd, root)
		},
	}

	return cmd
}

func runStories(cmd *cobra.Command, root *rootFlags) error {
	app, err := loadApp(cmd, root)
	if err != nil {
		return err
	}

	cycler, err := app.themes()
	if err != nil {
		return err
	}

	app.log.Info(fmt.Sprintf("launching stories for %d components", len(app.lib.Names())))

	p := tea.NewProgram(tui.NewModel(app.lib, cycler), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "stories execution failed")
		return fmt.Errorf("failed to run stories: %w", err)
	}

	app.log.Info("stories closed")
	return nil
}
