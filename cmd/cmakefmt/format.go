package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"cmakefmt/internal/driver"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format CMake files",
	Long: `Format CMakeLists.txt and *.cmake files. Directories are walked
recursively; "-" reads standard input and writes the result to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	fmtCmd.Flags().Bool("no-cache", false, "do not use the formatted-file cache")
	fmtCmd.Flags().Bool("allow-errors", false, "format files even when they have lexical errors")
	fmtCmd.Flags().Bool("verify", false, "re-parse and re-format every output to check it")
}

type fmtFlags struct {
	check        bool
	outputFormat string
	stdout       bool
	jobs         int
	ui           uiMode
	noCache      bool
	allowErrors  bool
	verify       bool
	quiet        bool
	maxDiag      int
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var (
		ff  fmtFlags
		err error
	)
	flags := cmd.Flags()
	if ff.check, err = flags.GetBool("check"); err != nil {
		return ff, err
	}
	if ff.outputFormat, err = flags.GetString("format"); err != nil {
		return ff, err
	}
	if ff.stdout, err = flags.GetBool("stdout"); err != nil {
		return ff, err
	}
	if ff.jobs, err = flags.GetInt("jobs"); err != nil {
		return ff, err
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return ff, err
	}
	if ff.ui, err = readUIMode(uiValue); err != nil {
		return ff, err
	}
	if ff.noCache, err = flags.GetBool("no-cache"); err != nil {
		return ff, err
	}
	if ff.allowErrors, err = flags.GetBool("allow-errors"); err != nil {
		return ff, err
	}
	if ff.verify, err = flags.GetBool("verify"); err != nil {
		return ff, err
	}
	if ff.quiet, err = flags.GetBool("quiet"); err != nil {
		return ff, err
	}
	if ff.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
		return ff, err
	}

	if ff.stdout && ff.check {
		return ff, fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if ff.stdout && ff.outputFormat != "text" {
		return ff, fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	switch ff.outputFormat {
	case "text", "json":
	default:
		return ff, fmt.Errorf("fmt: unsupported output format %q", ff.outputFormat)
	}
	return ff, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	ff, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 && args[0] == "-" {
		return runFmtStdin(cmd, ff)
	}

	opt, err := resolveStyle(cmd, styleDir(args[0]))
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Check:          ff.check,
		Stdout:         ff.stdout,
		AllowErrors:    ff.allowErrors,
		Verify:         ff.verify,
		MaxDiagnostics: ff.maxDiag,
		Jobs:           ff.jobs,
		Options:        opt,
		Timer:          timer,
	}
	if !ff.noCache {
		cache, err := driver.OpenDiskCache("cmakefmt")
		if err != nil {
			fmt.Fprintf(os.Stderr, "fmt: cache disabled: %v\n", err)
		} else {
			opts.Cache = cache
		}
	}

	var results []driver.FormatResult
	if !ff.stdout && ff.outputFormat == "text" && shouldUseTUI(ff.ui, ff.quiet) {
		results, err = runFormatWithUI(cmd.Context(), "cmakefmt fmt", args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	for _, res := range results {
		printDiagnostics(cmd, res.Bag, res.FileSet)
	}

	var hasErrors, hasChanges bool
	switch ff.outputFormat {
	case "text":
		if ff.stdout {
			if hasErrors, err = renderFmtStdout(cmd.OutOrStdout(), results); err != nil {
				return err
			}
		} else {
			hasErrors, hasChanges = renderFmtText(cmd.OutOrStdout(), results, ff.check, ff.quiet, useColor(cmd, os.Stdout))
		}
	case "json":
		if err := renderFmtJSON(cmd.OutOrStdout(), results, ff.check); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if ff.check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func runFmtStdin(cmd *cobra.Command, ff fmtFlags) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("fmt: read stdin: %w", err)
	}
	opt, err := resolveStyle(cmd, "")
	if err != nil {
		return err
	}
	res := driver.FormatSource(cmd.Context(), "<stdin>", src, driver.FormatOptions{
		Stdout:         true,
		AllowErrors:    ff.allowErrors,
		Verify:         ff.verify,
		MaxDiagnostics: ff.maxDiag,
		Options:        opt,
		Timer:          timer,
	})
	printDiagnostics(cmd, res.Bag, res.FileSet)
	if res.Err != nil {
		return res.Err
	}
	if ff.check {
		if res.Changed {
			return fmt.Errorf("fmt: formatting changes required")
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(res.Formatted)
	return err
}

// styleDir is the directory style discovery starts from for path.
func styleDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
		}
		if res.Changed {
			hasChanges = true
		}
	}
	return hasErrors, hasChanges
}

func renderFmtStdout(out io.Writer, results []driver.FormatResult) (hasErrors bool, err error) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if _, err := out.Write(res.Formatted); err != nil {
			return hasErrors, fmt.Errorf("fmt: write %s to stdout: %w", res.Path, err)
		}
	}
	return hasErrors, nil
}

func renderFmtText(out io.Writer, results []driver.FormatResult, check, quiet, useColor bool) (hasErrors, hasChanges bool) {
	changed := color.New(color.FgYellow)
	failed := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{changed, failed} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", failed.Sprint("error:"), res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		var printErr error
		if check {
			_, printErr = fmt.Fprintf(out, "%s %s\n", changed.Sprint("would reformat"), res.Path)
		} else {
			_, printErr = fmt.Fprintf(out, "%s %s\n", changed.Sprint("reformatted"), res.Path)
		}
		if printErr != nil {
			panic(printErr)
		}
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached,omitempty"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
