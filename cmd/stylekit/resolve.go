package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

type resolveOptions struct {
	set   []string
	class string
	merge bool
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Print the class string for a component selection",
		Example: `  stylekit resolve button --set variant=outline --set size=sm
  stylekit resolve button --class "w-full px-8" --merge`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Select an option as axis=option (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Override classes appended after variant classes")
	cmd.Flags().BoolVar(&opts.merge, "merge", false, "Drop classes overridden by a later class of the same property group")

	return cmd
}

func runResolve(cmd *cobra.Command, root *rootFlags, name string, opts *resolveOptions) error {
	app, err := loadApp(cmd, root)
	if err != nil {
		return err
	}

	def, err := app.lookup(name)
	if err != nil {
		return err
	}

	sel, err := parseSelection(opts.set)
	if err != nil {
		return err
	}

	var classes variant.ClassSet
	if opts.merge {
		classes, err = def.Table.ResolveMerged(sel, opts.class, variant.DefaultMerger())
	} else {
		classes, err = def.Table.Resolve(sel, opts.class)
	}
	if err != nil {
		return newCommandError("resolve", name, err, "Run 'stylekit list' to see the axes and options of each component.")
	}

	app.log.WithComponent(name).Debugf("resolved %d classes", len(classes))
	fmt.Fprintln(cmd.OutOrStdout(), classes.String())
	return nil
}
