package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cmakefmt/internal/style"
)

var dumpConfigCmd = &cobra.Command{
	Use:   "dump-config [dir]",
	Short: "Print the effective style",
	Long: `Print the style that applies to files in dir (default: the working
directory) after the style file and command-line flags are applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDumpConfig,
}

func init() {
	dumpConfigCmd.Flags().String("format", "yaml", "output format (yaml|toml)")
}

func runDumpConfig(cmd *cobra.Command, args []string) error {
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	dir := ""
	if len(args) == 1 {
		dir = args[0]
	}
	opt, err := resolveStyle(cmd, dir)
	if err != nil {
		return err
	}

	switch outputFormat {
	case "yaml":
		return style.Dump(cmd.OutOrStdout(), opt)
	case "toml":
		return style.DumpTOML(cmd.OutOrStdout(), opt)
	default:
		return fmt.Errorf("dump-config: unsupported format %q (must be yaml or toml)", outputFormat)
	}
}
