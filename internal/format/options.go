package format

import (
	"errors"
	"fmt"
)

// Options is the style policy. Field names match the keys of the style file.
type Options struct {
	IndentWidth                   int  `yaml:"IndentWidth" toml:"IndentWidth" json:"IndentWidth"`
	ColumnLimit                   int  `yaml:"ColumnLimit" toml:"ColumnLimit" json:"ColumnLimit"`
	UseTab                        bool `yaml:"UseTab" toml:"UseTab" json:"UseTab"`
	SpacesInParens                bool `yaml:"SpacesInParens" toml:"SpacesInParens" json:"SpacesInParens"`
	SpaceBeforeParens             bool `yaml:"SpaceBeforeParens" toml:"SpaceBeforeParens" json:"SpaceBeforeParens"`
	AlignArguments                bool `yaml:"AlignArguments" toml:"AlignArguments" json:"AlignArguments"`
	ClosingParensOnNewLine        bool `yaml:"ClosingParensOnNewLine" toml:"ClosingParensOnNewLine" json:"ClosingParensOnNewLine"`
	KeepShortStatementOnSameLine  int  `yaml:"KeepShortStatementOnSameLine" toml:"KeepShortStatementOnSameLine" json:"KeepShortStatementOnSameLine"`
	AlwaysBreakAfterFirstArgument bool `yaml:"AlwaysBreakAfterFirstArgument" toml:"AlwaysBreakAfterFirstArgument" json:"AlwaysBreakAfterFirstArgument"`
	BreakBeforeKeywordArgument    bool `yaml:"BreakBeforeKeywordArgument" toml:"BreakBeforeKeywordArgument" json:"BreakBeforeKeywordArgument"`
	AlignOptions                  bool `yaml:"AlignOptions" toml:"AlignOptions" json:"AlignOptions"`
}

// DefaultOptions returns the built-in style.
func DefaultOptions() Options {
	return Options{
		IndentWidth:    2,
		ColumnLimit:    80,
		AlignArguments: true,
	}
}

// Validate rejects values the printer cannot honour.
func (o Options) Validate() error {
	var errs []error
	if o.IndentWidth <= 0 {
		errs = append(errs, fmt.Errorf("IndentWidth must be positive, got %d", o.IndentWidth))
	}
	if o.ColumnLimit < 0 {
		errs = append(errs, fmt.Errorf("ColumnLimit must not be negative, got %d", o.ColumnLimit))
	}
	if o.KeepShortStatementOnSameLine < 0 {
		errs = append(errs, fmt.Errorf("KeepShortStatementOnSameLine must not be negative, got %d", o.KeepShortStatementOnSameLine))
	}
	return errors.Join(errs...)
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 2
	}
	if o.KeepShortStatementOnSameLine < 0 {
		o.KeepShortStatementOnSameLine = 0
	}
	return o
}

// Fingerprint is a stable textual form of the options, used in cache keys.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("iw=%d;cl=%d;tab=%t;sip=%t;sbp=%t;aa=%t;cponl=%t;kss=%d;abafa=%t;bbka=%t;ao=%t",
		o.IndentWidth, o.ColumnLimit, o.UseTab, o.SpacesInParens, o.SpaceBeforeParens,
		o.AlignArguments, o.ClosingParensOnNewLine, o.KeepShortStatementOnSameLine,
		o.AlwaysBreakAfterFirstArgument, o.BreakBeforeKeywordArgument, o.AlignOptions)
}
