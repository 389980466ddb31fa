package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/diagfmt"
	"cmakefmt/internal/format"
	"cmakefmt/internal/source"
	"cmakefmt/internal/style"
	"cmakefmt/internal/trace"
)

// styleFlag binds one command-line flag to one style option. Exactly one of
// boolField and intField is set.
type styleFlag struct {
	name      string
	usage     string
	boolField func(*format.Options) *bool
	intField  func(*format.Options) *int
}

var styleFlags = []styleFlag{
	{name: "indent-width", usage: "spaces per indentation level", intField: func(o *format.Options) *int { return &o.IndentWidth }},
	{name: "column-limit", usage: "preferred line width (advisory)", intField: func(o *format.Options) *int { return &o.ColumnLimit }},
	{name: "use-tab", usage: "indent with tabs", boolField: func(o *format.Options) *bool { return &o.UseTab }},
	{name: "spaces-in-parens", usage: "pad the inside of argument parentheses", boolField: func(o *format.Options) *bool { return &o.SpacesInParens }},
	{name: "space-before-parens", usage: "put a space between a command name and '('", boolField: func(o *format.Options) *bool { return &o.SpaceBeforeParens }},
	{name: "align-arguments", usage: "align continuation lines with the first argument", boolField: func(o *format.Options) *bool { return &o.AlignArguments }},
	{name: "closing-parens-on-new-line", usage: "put ')' of multi-line commands on its own line", boolField: func(o *format.Options) *bool { return &o.ClosingParensOnNewLine }},
	{name: "keep-short-statement-on-same-line", usage: "join commands with at most N arguments onto one line", intField: func(o *format.Options) *int { return &o.KeepShortStatementOnSameLine }},
	{name: "always-break-after-first-argument", usage: "start multi-line commands with the first argument alone", boolField: func(o *format.Options) *bool { return &o.AlwaysBreakAfterFirstArgument }},
	{name: "break-before-keyword-argument", usage: "start a new line before keyword arguments", boolField: func(o *format.Options) *bool { return &o.BreakBeforeKeywordArgument }},
	{name: "align-options", usage: "align values of consecutive option lines", boolField: func(o *format.Options) *bool { return &o.AlignOptions }},
}

func registerStyleFlags(fs *pflag.FlagSet) {
	def := format.DefaultOptions()
	for _, sf := range styleFlags {
		if sf.boolField != nil {
			fs.Bool(sf.name, *sf.boolField(&def), sf.usage)
		} else {
			fs.Int(sf.name, *sf.intField(&def), sf.usage)
		}
	}
}

// applyStyleFlags copies explicitly set flags over opt.
func applyStyleFlags(fs *pflag.FlagSet, opt format.Options) (format.Options, error) {
	for _, sf := range styleFlags {
		if !fs.Changed(sf.name) {
			continue
		}
		if sf.boolField != nil {
			v, err := fs.GetBool(sf.name)
			if err != nil {
				return opt, err
			}
			*sf.boolField(&opt) = v
			continue
		}
		v, err := fs.GetInt(sf.name)
		if err != nil {
			return opt, err
		}
		*sf.intField(&opt) = v
	}
	if err := opt.Validate(); err != nil {
		return opt, fmt.Errorf("style: %w", err)
	}
	return opt, nil
}

// resolveStyle builds the effective style for files under dir: defaults,
// then the style file, then command-line flags. Style file diagnostics go
// to stderr.
func resolveStyle(cmd *cobra.Command, dir string) (format.Options, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return format.Options{}, err
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return format.Options{}, err
	}

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics)
	opt, used, err := style.Resolve(fs, explicit, dir, format.DefaultOptions(), diag.BagReporter{Bag: bag})
	printDiagnostics(cmd, bag, fs)
	if err != nil {
		return opt, fmt.Errorf("style: %w", err)
	}
	if bag.HasErrors() {
		return opt, fmt.Errorf("style: %s is invalid", used)
	}
	if used != "" {
		trace.Point(trace.FromContext(cmd.Context()), trace.ScopeDriver, "style", used, trace.CurrentSpan(cmd.Context()))
	}
	return applyStyleFlags(cmd.Flags(), opt)
}

// minSeverity reads --min-severity; --quiet raises it to error.
func minSeverity(cmd *cobra.Command) (diag.Severity, error) {
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		return diag.SevError, nil
	}
	raw, err := cmd.Flags().GetString("min-severity")
	if err != nil {
		return diag.SevInfo, err
	}
	sev, ok := diag.ParseSeverity(raw)
	if !ok {
		return diag.SevInfo, fmt.Errorf("invalid --min-severity %q (want info|warning|error)", raw)
	}
	return sev, nil
}

// printDiagnostics writes bag to stderr, dropping anything below --min-severity.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 || fs == nil {
		return
	}
	if sev, err := minSeverity(cmd); err == nil && sev > diag.SevInfo {
		bag.Filter(sev)
		if bag.Len() == 0 {
			return
		}
	}
	bag.Sort()
	pathMode, _ := cmd.Flags().GetString("path-mode")
	pm, _ := diagfmt.ParsePathMode(pathMode)
	outFormat, _ := cmd.Flags().GetString("diagnostics-format")
	switch outFormat {
	case "short":
		fmt.Fprint(os.Stderr, diag.FormatShortDiagnostics(bag.Items(), fs, true))
	case "json":
		if err := diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pm,
			IncludeNotes:     true,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "cmakefmt: %v\n", err)
		}
	default:
		diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   1,
			PathMode:  pm,
			ShowNotes: true,
		})
	}
}

// checkDiagnosticFlags validates --diagnostics-format and --path-mode.
func checkDiagnosticFlags(cmd *cobra.Command) error {
	outFormat, err := cmd.Flags().GetString("diagnostics-format")
	if err != nil {
		return err
	}
	switch outFormat {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("invalid --diagnostics-format %q (want pretty|short|json)", outFormat)
	}
	pathMode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return err
	}
	if _, ok := diagfmt.ParsePathMode(pathMode); !ok {
		return fmt.Errorf("invalid --path-mode %q (want auto|absolute|relative|basename)", pathMode)
	}
	return nil
}
