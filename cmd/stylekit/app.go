package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/catalog"
	"github.com/alexisbeaulieu97/stylekit/internal/component"
	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
)

// appContext holds what every command needs: configuration, a logger and the
// component library with configured catalogs loaded.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
	lib *component.Library
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	cfg, err := config.ParseConfig(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", flags.configPath, err, "Fix the configuration file or pass --config with another path.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.HumanLogs, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError("create logger", "log level "+level, err, "Use one of trace, debug, info, warn or error.")
	}
	log = log.WithFields(map[string]any{"command": cmd.Name()})

	lib := component.Builtin(log)
	if err := catalog.LoadInto(lib, log, cfg.Catalogs...); err != nil {
		return nil, newCommandError("load catalogs", "configured catalogs", err, "Run 'stylekit validate' on the catalog files to see every problem.")
	}

	return &appContext{cfg: cfg, log: log, lib: lib}, nil
}

func (a *appContext) lookup(name string) (*component.Definition, error) {
	def, ok := a.lib.Get(name)
	if !ok {
		return nil, newCommandError("find component", name, errUnknownComponent(name), "Run 'stylekit list' to see available components.")
	}
	return def, nil
}

// themes builds a cycler persisted to the configured theme state file.
func (a *appContext) themes() (*theme.Cycler, error) {
	opts := a.cfg.ThemeOptions()
	opts = append(opts, theme.WithLogger(a.log))

	if a.cfg.ThemeState != "" {
		store, err := theme.NewFileStore(a.cfg.ThemeState)
		if err != nil {
			return nil, newCommandError("open theme state", a.cfg.ThemeState, err, "Check that the theme_state directory is writable.")
		}
		opts = append(opts, theme.WithStore(store))
	}

	cycler, err := theme.NewCycler(opts...)
	if err != nil {
		return nil, newCommandError("load themes", "theme configuration", err, "Check the themes and default_theme settings.")
	}
	return cycler, nil
}
