package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cmakefmt/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cmakefmt [flags] <file> [file...]",
	Short: "In-place CMake reformatter",
	Long: `cmakefmt rewrites CMakeLists.txt and *.cmake files in place.
The style comes from the nearest .cmake_format (or .cmake-format.yaml/.toml)
found from the working directory upward, unless --config names one.
Style flags override values from the file.`,
	Args:                  cobra.ArbitraryArgs,
	SilenceUsage:          true,
	SilenceErrors:         true,
	PersistentPreRunE:     preRun,
	RunE:                  runRoot,
	DisableFlagsInUseLine: true,
}

func init() {
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(dumpConfigCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().Bool("dump-config", false, "print the effective style and exit")

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "style file (default: nearest .cmake_format upward)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.String("diagnostics-format", "pretty", "diagnostics output on stderr (pretty|short|json)")
	pf.String("path-mode", "auto", "how diagnostics show paths (auto|absolute|relative|basename)")
	pf.String("min-severity", "info", "lowest diagnostic severity to print (info|warning|error)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("trace", "", "trace output file (\"-\" for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	registerStyleFlags(pf)
}

// main executes the root command. If command execution returns an error,
// the process exits with status code 1.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	finish(err)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmakefmt: %v\n", err)
		os.Exit(1)
	}
}

func preRun(cmd *cobra.Command, _ []string) error {
	if err := setupTracing(cmd); err != nil {
		return err
	}
	if _, err := minSeverity(cmd); err != nil {
		return err
	}
	if err := checkDiagnosticFlags(cmd); err != nil {
		return err
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	if timings {
		startTimer()
	}
	return nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves --color for output going to f.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return isTerminal(f)
	}
}
