package main

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
)

type renderOptions struct {
	set   []string
	class string
	text  string
	attrs []string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render <component>",
		Short:   "Render a component as an HTML snippet",
		Example: `  stylekit render button --set variant=destructive --text "Delete" --attr type=submit`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Select an option as axis=option (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Override classes appended after variant classes")
	cmd.Flags().StringVar(&opts.text, "text", "", "Text content of the element")
	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Extra attribute as name=value (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, name string, opts *renderOptions) error {
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

	attrs, err := parseAttributes(opts.attrs)
	if err != nil {
		return err
	}

	var children []templ.Component
	if opts.text != "" {
		children = append(children, component.Text(opts.text))
	}

	comp, err := def.Render(component.Props{Selection: sel, Class: opts.class, Attrs: attrs}, children...)
	if err != nil {
		return newCommandError("render", name, err, "Run 'stylekit list' to see the axes and options of each component.")
	}

	out := cmd.OutOrStdout()
	if err := comp.Render(cmd.Context(), out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	return nil
}

// parseAttributes reads name=value pairs; a bare name is a boolean attribute.
func parseAttributes(pairs []string) (templ.Attributes, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(templ.Attributes, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("invalid attribute %q: expected name=value", pair)
		}
		if !ok {
			attrs[name] = true
			continue
		}
		attrs[name] = value
	}
	return attrs, nil
}
