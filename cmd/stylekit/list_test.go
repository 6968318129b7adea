package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListCommandTableOutput(t *testing.T) {
	cfg := setupHome(t, "")

	stdout, err := executeCommand(t, cfg, "list")
	require.NoError(t, err)
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "variant=default*|destructive|outline|secondary|ghost|link")
	require.Contains(t, stdout, "size=default*|sm|lg|icon")
	require.Contains(t, stdout, "Bordered container for grouped content")
}

func TestListCommandJSONOutput(t *testing.T) {
	cfg := setupHome(t, "catalogs: [chips.yaml]\n")
	writeFile(t, filepath.Dir(cfg), "chips.yaml", chipCatalog)

	stdout, err := executeCommand(t, cfg, "list", "--json")
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, len(payload.Components), payload.Count)

	var chip *listJSONComponent
	for i := range payload.Components {
		if payload.Components[i].Name == "chip" {
			chip = &payload.Components[i]
		}
	}
	require.NotNil(t, chip)
	require.Equal(t, "span", chip.Element)
	require.Equal(t, []string{"inline-flex", "rounded-full"}, chip.Base)
	require.Equal(t, []listJSONAxis{{ID: "tone", Default: "plain", Options: []string{"plain", "loud"}}}, chip.Axes)
}
