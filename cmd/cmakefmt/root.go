package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cmakefmt/internal/driver"
	"cmakefmt/internal/style"
)

// runRoot keeps the classic interface: every argument is formatted in
// place. Unreadable arguments are reported and skipped; lexical errors do
// not stop a file from being formatted.
func runRoot(cmd *cobra.Command, args []string) error {
	dumpConfig, err := cmd.Flags().GetBool("dump-config")
	if err != nil {
		return err
	}
	if dumpConfig {
		opt, err := resolveStyle(cmd, "")
		if err != nil {
			return err
		}
		return style.Dump(cmd.OutOrStdout(), opt)
	}
	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New("no input files")
	}

	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}

	opt, err := resolveStyle(cmd, "")
	if err != nil {
		return err
	}

	failed := 0
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		if _, err := os.Stat(arg); err != nil {
			fmt.Fprintf(os.Stderr, "cmakefmt: %v\n", err)
			failed++
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(args))
	}

	results, err := driver.FormatPaths(cmd.Context(), paths, driver.FormatOptions{
		AllowErrors:    true,
		MaxDiagnostics: maxDiagnostics,
		Options:        opt,
		Timer:          timer,
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		printDiagnostics(cmd, res.Bag, res.FileSet)
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "cmakefmt: %v\n", res.Err)
			failed++
			continue
		}
		if res.Changed && !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "reformatted %s\n", res.Path)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d files failed", failed)
	}
	return nil
}
