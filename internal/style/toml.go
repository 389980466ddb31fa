package style

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/source"
)

func decodeTOML(file *source.File, base format.Options, rep diag.Reporter) (format.Options, error) {
	opt := base
	meta, err := toml.Decode(string(file.Content), &opt)
	if err != nil {
		diag.ReportError(rep, diag.CfgParseError, tomlErrorSpan(file, err), err.Error()).Emit()
		return base, fmt.Errorf("%s: failed to parse TOML: %w", file.Path, err)
	}
	for _, key := range meta.Undecoded() {
		msg := fmt.Sprintf("unknown style option %q ignored", key.String())
		diag.ReportWarning(rep, diag.CfgUnknownKey, source.Span{File: file.ID}, msg).Emit()
	}
	return opt, nil
}

func tomlErrorSpan(file *source.File, err error) source.Span {
	sp := source.Span{File: file.ID}
	var perr toml.ParseError
	if !errors.As(err, &perr) {
		return sp
	}
	start, errStart := safecast.Conv[uint32](perr.Position.Start)
	length, errLen := safecast.Conv[uint32](perr.Position.Len)
	limit, errLimit := safecast.Conv[uint32](len(file.Content))
	if errStart != nil || errLen != nil || errLimit != nil {
		return sp
	}
	sp.Start = min(start, limit)
	sp.End = min(start+length, limit)
	return sp
}
