package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const chipCatalog = `version: "1"
components:
  - name: chip
    element: span
    base: inline-flex rounded-full
    defaults:
      tone: plain
    variants:
      tone:
        plain: bg-muted
        loud: [bg-red-600, text-white]
`

// setupHome writes a configuration into a temporary directory and returns
// its path. Extra lines are appended verbatim.
func setupHome(t *testing.T, extra string) string {
	t.Helper()

	dir := t.TempDir()
	content := "log_level: warn\nthemes: [light, dark]\ntheme_state: state/theme.json\n" + extra
	path := filepath.Join(dir, "stylekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func executeCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(append([]string{"--config", configPath}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
