package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/component"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(root *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components with their variant axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd, root)
			if err != nil {
				return err
			}
			defs := app.lib.All()
			if opts.jsonOutput {
				return renderListJSON(cmd, defs)
			}
			return renderListTable(cmd, defs)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderListTable(cmd *cobra.Command, defs []*component.Definition) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tELEMENT\tAXES\tDESCRIPTION")
	for _, def := range defs {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
			def.Name,
			valueOrFallback(def.Element, "div"),
			formatAxes(def),
			valueOrFallback(def.Description, "-"),
		)
	}

	return writer.Flush()
}

// formatAxes renders axes as id=opt1|opt2 with the default option starred.
func formatAxes(def *component.Definition) string {
	axes := def.Table.Axes()
	if len(axes) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(axes))
	for _, axis := range axes {
		keys := axis.Keys()
		for i, key := range keys {
			if key == axis.Default {
				keys[i] = key + "*"
			}
		}
		parts = append(parts, axis.ID+"="+strings.Join(keys, "|"))
	}
	return strings.Join(parts, " ")
}

type listJSONAxis struct {
	ID      string   `json:"id"`
	Default string   `json:"default"`
	Options []string `json:"options"`
}

type listJSONComponent struct {
	Name        string         `json:"name"`
	Element     string         `json:"element"`
	Description string         `json:"description,omitempty"`
	Base        []string       `json:"base"`
	Axes        []listJSONAxis `json:"axes"`
}

type listJSONPayload struct {
	Version    string              `json:"version"`
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, defs []*component.Definition) error {
	payload := listJSONPayload{
		Version:    "1.0",
		Count:      len(defs),
		Components: make([]listJSONComponent, len(defs)),
	}

	for i, def := range defs {
		axes := def.Table.Axes()
		entry := listJSONComponent{
			Name:        def.Name,
			Element:     valueOrFallback(def.Element, "div"),
			Description: def.Description,
			Base:        def.Table.Base(),
			Axes:        make([]listJSONAxis, len(axes)),
		}
		for j, axis := range axes {
			entry.Axes[j] = listJSONAxis{ID: axis.ID, Default: axis.Default, Options: axis.Keys()}
		}
		payload.Components[i] = entry
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
