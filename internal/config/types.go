package config

import (
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "stylekit.yaml"

// Config is the stylekit application configuration.
type Config struct {
	LogLevel     string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanLogs    bool     `yaml:"human_logs"`
	Catalogs     []string `yaml:"catalogs,omitempty" validate:"omitempty,dive,required"`
	Themes       []string `yaml:"themes,omitempty" validate:"omitempty,unique,dive,required,theme_name"`
	DefaultTheme string   `yaml:"default_theme,omitempty" validate:"omitempty,theme_name"`
	ThemeState   string   `yaml:"theme_state,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel:   "info",
		HumanLogs:  true,
		Themes:     append([]string(nil), theme.DefaultThemes...),
		ThemeState: DefaultThemeStatePath(),
	}
}

// DefaultThemeStatePath places the theme state under the user config dir,
// falling back to the working directory.
func DefaultThemeStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".stylekit", "theme.json")
	}
	return filepath.Join(dir, "stylekit", "theme.json")
}

// ThemeOptions translates the configuration into theme cycler options.
func (c *Config) ThemeOptions() []theme.Option {
	opts := []theme.Option{theme.WithThemes(c.Themes...)}
	if c.DefaultTheme != "" {
		opts = append(opts, theme.WithInitial(c.DefaultTheme))
	}
	return opts
}
