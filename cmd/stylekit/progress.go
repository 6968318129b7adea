package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/progress"
)

type progressOptions struct {
	value float64
	max   float64
	width int
	html  bool
}

func newProgressCmd() *cobra.Command {
	opts := &progressOptions{}

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Render a progress bar; omit --value for an indeterminate bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := progress.Indeterminate(opts.max)
			if cmd.Flags().Changed("value") {
				state = progress.New(opts.value, opts.max)
			}
			return runProgress(cmd, state, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.value, "value", 0, "Current value")
	cmd.Flags().Float64Var(&opts.max, "max", progress.DefaultMax, "Maximum value")
	cmd.Flags().IntVar(&opts.width, "width", 40, "Bar width in cells")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Print the HTML progress component instead of a terminal bar")

	return cmd
}

func runProgress(cmd *cobra.Command, state progress.State, opts *progressOptions) error {
	out := cmd.OutOrStdout()
	if !opts.html {
		fmt.Fprintln(out, state.Render(opts.width))
		return nil
	}

	bar, err := component.ProgressBar(state, nil, "")
	if err != nil {
		return err
	}
	if err := bar.Render(cmd.Context(), out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}
