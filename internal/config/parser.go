package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file, applies defaults for omitted
// fields and validates the result. A missing file yields Default().
// Relative catalog and state paths are resolved against the file's directory.
func ParseConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, stylekiterrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, stylekiterrors.NewParseError(path, extractLine(err), err)
	}
	if len(cfg.Themes) == 0 {
		cfg.Themes = Default().Themes
	}

	base := filepath.Dir(path)
	for i, catalog := range cfg.Catalogs {
		cfg.Catalogs[i] = resolvePath(base, catalog)
	}
	cfg.ThemeState = resolvePath(base, cfg.ThemeState)

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolvePath(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
