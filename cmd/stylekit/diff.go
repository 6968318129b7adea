package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
)

type diffOptions struct {
	from  []string
	to    []string
	class string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:     "diff <component>",
		Short:   "Show which classes change between two selections",
		Example: `  stylekit diff button --from size=sm --to size=lg`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.from, "from", nil, "Selection to compare from as axis=option (repeatable)")
	cmd.Flags().StringArrayVar(&opts.to, "to", nil, "Selection to compare to as axis=option (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Override classes applied to both sides")

	return cmd
}

func runDiff(cmd *cobra.Command, root *rootFlags, name string, opts *diffOptions) error {
	app, err := loadApp(cmd, root)
	if err != nil {
		return err
	}

	def, err := app.lookup(name)
	if err != nil {
		return err
	}

	from, err := resolveSide(def, opts.from, opts.class)
	if err != nil {
		return err
	}
	to, err := resolveSide(def, opts.to, opts.class)
	if err != nil {
		return err
	}

	out := diff.Classes(from, to, sideLabel(name, opts.from), sideLabel(name, opts.to))
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no class changes")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

func resolveSide(def *component.Definition, pairs []string, override string) (variant.ClassSet, error) {
	sel, err := parseSelection(pairs)
	if err != nil {
		return nil, err
	}
	classes, err := def.Table.Resolve(sel, override)
	if err != nil {
		return nil, newCommandError("resolve", def.Name, err, "Run 'stylekit list' to see the axes and options of each component.")
	}
	return classes, nil
}

func sideLabel(name string, pairs []string) string {
	if len(pairs) == 0 {
		return name + " (defaults)"
	}
	return name + " " + strings.Join(pairs, " ")
}
