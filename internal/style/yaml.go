package style

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"gopkg.in/yaml.v3"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/source"
)

type yamlDecoder struct {
	file *source.File
	rep  diag.Reporter
	opt  format.Options
}

func decodeYAML(file *source.File, base format.Options, rep diag.Reporter) (format.Options, error) {
	d := yamlDecoder{file: file, rep: rep, opt: base}

	var doc yaml.Node
	if err := yaml.Unmarshal(file.Content, &doc); err != nil {
		diag.ReportError(rep, diag.CfgParseError, source.Span{File: file.ID}, err.Error()).Emit()
		return base, fmt.Errorf("%s: failed to parse YAML: %w", file.Path, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return d.opt, nil
		}
		root = root.Content[0]
	}
	switch root.Kind {
	case 0:
		// пустой файл или только комментарии
		return d.opt, nil
	case yaml.ScalarNode:
		if root.Tag == "!!null" {
			return d.opt, nil
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(root.Content); i += 2 {
			d.apply(root.Content[i], root.Content[i+1])
		}
		return d.opt, nil
	}
	msg := "style file must be a mapping of option names to values"
	diag.ReportError(rep, diag.CfgParseError, d.span(root), msg).Emit()
	return base, fmt.Errorf("%s: %s", file.Path, msg)
}

func (d *yamlDecoder) apply(key, val *yaml.Node) {
	name := key.Value
	if val.Kind != yaml.ScalarNode {
		if isKnownKey(name) {
			d.badValue(val, name, "expected a scalar value")
		} else {
			d.unknown(key)
		}
		return
	}
	v := strings.TrimSpace(val.Value)
	switch name {
	case "IndentWidth":
		d.setInt(&d.opt.IndentWidth, 1, name, val)
	case "ColumnLimit":
		d.setInt(&d.opt.ColumnLimit, 0, name, val)
	case "KeepShortStatementOnSameLine":
		d.setInt(&d.opt.KeepShortStatementOnSameLine, 0, name, val)
	case "UseTab":
		// clang-format: Never, ForIndentation, Always, ...
		d.opt.UseTab = strings.EqualFold(v, "Always") || strings.EqualFold(v, "true")
	case "SpacesInParens":
		d.opt.SpacesInParens = !isNever(v)
	case "SpaceBeforeParens":
		d.opt.SpaceBeforeParens = !isNever(v)
	case "AlignArguments":
		d.opt.AlignArguments = parseBool(v)
	case "AlignOperands":
		d.opt.AlignArguments = !strings.EqualFold(v, "DontAlign")
	case "ClosingParensOnNewLine":
		d.opt.ClosingParensOnNewLine = parseBool(v)
	case "AlwaysBreakAfterFirstArgument":
		d.opt.AlwaysBreakAfterFirstArgument = parseBool(v)
	case "BreakBeforeKeywordArgument":
		d.opt.BreakBeforeKeywordArgument = parseBool(v)
	case "AlignOptions":
		d.opt.AlignOptions = parseBool(v)
	default:
		d.unknown(key)
	}
}

func (d *yamlDecoder) setInt(dst *int, minValue int, name string, val *yaml.Node) {
	n, err := strconv.Atoi(strings.TrimSpace(val.Value))
	if err != nil {
		d.badValue(val, name, "expected an integer")
		return
	}
	if n < minValue {
		d.badValue(val, name, fmt.Sprintf("must be at least %d", minValue))
		return
	}
	*dst = n
}

func (d *yamlDecoder) badValue(val *yaml.Node, name, why string) {
	msg := fmt.Sprintf("invalid value %q for %s: %s", val.Value, name, why)
	diag.ReportWarning(d.rep, diag.CfgBadValue, d.span(val), msg).Emit()
}

// unknown keys are common in shared clang-format files, so they are only info.
func (d *yamlDecoder) unknown(key *yaml.Node) {
	msg := fmt.Sprintf("unknown style option %q ignored", key.Value)
	diag.ReportInfo(d.rep, diag.CfgUnknownKey, d.span(key), msg).Emit()
}

// span maps a node position back into the style file.
func (d *yamlDecoder) span(n *yaml.Node) source.Span {
	line, errLine := safecast.Conv[uint32](n.Line)
	col, errCol := safecast.Conv[uint32](n.Column)
	if errLine != nil || errCol != nil {
		return source.Span{File: d.file.ID}
	}
	start := d.file.Offset(line, col)
	width, errWidth := safecast.Conv[uint32](len(n.Value))
	limit, errLimit := safecast.Conv[uint32](len(d.file.Content))
	if errWidth != nil || errLimit != nil {
		return source.Span{File: d.file.ID, Start: start, End: start}
	}
	return source.Span{File: d.file.ID, Start: start, End: min(start+width, limit)}
}

func isNever(v string) bool {
	return strings.EqualFold(v, "Never") || strings.EqualFold(v, "false")
}

func parseBool(v string) bool {
	return strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || v == "1"
}

var knownKeys = map[string]struct{}{
	"IndentWidth": {}, "ColumnLimit": {}, "UseTab": {}, "SpacesInParens": {},
	"SpaceBeforeParens": {}, "AlignArguments": {}, "AlignOperands": {},
	"ClosingParensOnNewLine": {}, "KeepShortStatementOnSameLine": {},
	"AlwaysBreakAfterFirstArgument": {}, "BreakBeforeKeywordArgument": {},
	"AlignOptions": {},
}

func isKnownKey(name string) bool {
	_, ok := knownKeys[name]
	return ok
}
