package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/stylekit/internal/catalog"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog.yaml>...",
		Short: "Check component catalogs without registering them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, args)
		},
	}

	return cmd
}

// runValidate checks every file, reporting each outcome, and fails when any
// file was rejected.
func runValidate(cmd *cobra.Command, root *rootFlags, paths []string) error {
	level := "warn"
	if root.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var failures error
	for _, path := range paths {
		defs, err := catalog.LoadFile(path)
		if err != nil {
			log.WithFields(map[string]any{"catalog": path}).Debug("catalog rejected")
			fmt.Fprintf(out, "FAIL %s\n  %v\n", path, err)
			failures = multierr.Append(failures, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d components)\n", path, len(defs))
	}

	if failures != nil {
		count := len(multierr.Errors(failures))
		return newCommandError("validate", fmt.Sprintf("%d of %d catalogs", count, len(paths)), failures, "Fix the reported fields and run validate again.")
	}
	return nil
}
