package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.HumanLogs)
	assert.Equal(t, []string{"light", "dark", "system"}, cfg.Themes)
	assert.NotEmpty(t, cfg.ThemeState)
}

func TestParseConfigResolvesRelativePaths(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `log_level: debug
human_logs: false
catalogs:
  - catalogs/brand.yaml
  - /abs/extra.yaml
themes: [paper, ink]
default_theme: ink
theme_state: state/theme.json
`)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.HumanLogs)
	assert.Equal(t, []string{filepath.Join(dir, "catalogs", "brand.yaml"), "/abs/extra.yaml"}, cfg.Catalogs)
	assert.Equal(t, filepath.Join(dir, "state", "theme.json"), cfg.ThemeState)
	assert.Equal(t, []string{"paper", "ink"}, cfg.Themes)
	assert.Len(t, cfg.ThemeOptions(), 2)
}

func TestParseConfigKeepsDefaultsForOmittedFields(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(writeConfig(t, "log_level: warn\n"))
	require.NoError(t, err)
	assert.True(t, cfg.HumanLogs)
	assert.Equal(t, []string{"light", "dark", "system"}, cfg.Themes)
	assert.Len(t, cfg.ThemeOptions(), 1)
}

func TestParseConfigReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(writeConfig(t, "log_level: info\nthemes: [a, b\n"))
	var parseErr *stylekiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}
