package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestResolveCommandPrintsClasses(t *testing.T) {
	cfg := setupHome(t, "")

	stdout, err := executeCommand(t, cfg, "resolve", "button", "--set", "variant=outline", "--set", "size=sm")
	require.NoError(t, err)
	require.Contains(t, stdout, "border-input")
	require.Contains(t, stdout, "h-8")
	require.NotContains(t, stdout, "bg-primary")
	require.True(t, strings.HasPrefix(stdout, "inline-flex items-center"))
}

func TestResolveCommandMerge(t *testing.T) {
	cfg := setupHome(t, "")

	plain, err := executeCommand(t, cfg, "resolve", "button", "--class", "px-8")
	require.NoError(t, err)
	require.Contains(t, plain, "px-4")
	require.Contains(t, plain, "px-8")

	merged, err := executeCommand(t, cfg, "resolve", "button", "--class", "px-8", "--merge")
	require.NoError(t, err)
	require.NotContains(t, merged, "px-4")
	require.Contains(t, merged, "px-8")
}

func TestResolveCommandMergeKeepsRepeatedOverride(t *testing.T) {
	cfg := setupHome(t, "")

	stdout, err := executeCommand(t, cfg, "resolve", "button", "--set", "size=sm", "--class", "text-sm", "--merge")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(stdout, "h-8 rounded-md px-3 text-sm\n"), stdout)
	require.NotContains(t, stdout, "text-xs")
}

func TestResolveCommandUnknownOption(t *testing.T) {
	cfg := setupHome(t, "")

	_, err := executeCommand(t, cfg, "resolve", "button", "--set", "variant=neon")
	require.ErrorIs(t, err, stylekiterrors.ErrUnknownOption)
	require.Contains(t, err.Error(), "Suggestion")
}

func TestResolveCommandRejectsMalformedSelection(t *testing.T) {
	cfg := setupHome(t, "")

	_, err := executeCommand(t, cfg, "resolve", "button", "--set", "variant")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected axis=option")
}

func TestResolveCommandUnknownComponent(t *testing.T) {
	cfg := setupHome(t, "")

	_, err := executeCommand(t, cfg, "resolve", "carousel")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown component "carousel"`)
}

func TestResolveCommandUsesConfiguredCatalogs(t *testing.T) {
	cfg := setupHome(t, "catalogs: [chips.yaml]\n")
	writeFile(t, filepath.Dir(cfg), "chips.yaml", chipCatalog)

	stdout, err := executeCommand(t, cfg, "resolve", "chip", "--set", "tone=loud")
	require.NoError(t, err)
	require.Equal(t, "inline-flex rounded-full bg-red-600 text-white\n", stdout)
}

func TestParseSelection(t *testing.T) {
	sel, err := parseSelection([]string{"size=sm", " tone = loud ", "size=lg"})
	require.NoError(t, err)
	require.Equal(t, "lg", sel["size"])
	require.Equal(t, "loud", sel["tone"])

	_, err = parseSelection([]string{"=sm"})
	require.Error(t, err)
}
