package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cmakefmt/internal/diagfmt"
	"cmakefmt/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file|->",
	Short: "Print the syntax tree of a CMake file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("trivia", false, "include whitespace and line breaks in pretty output")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if args[0] == "-" {
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		result = driver.ParseSource("<stdin>", src, maxDiagnostics)
	} else {
		result, err = driver.Parse(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	switch format {
	case "pretty":
		return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Tree, result.FileSet, !trivia)
	case "json":
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
