package style

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"cmakefmt/internal/format"
)

type entry struct {
	key   string
	tag   string
	value string
}

func entries(opt format.Options) []entry {
	b := func(key string, v bool) entry { return entry{key, "!!bool", strconv.FormatBool(v)} }
	i := func(key string, v int) entry { return entry{key, "!!int", strconv.Itoa(v)} }
	out := []entry{
		i("IndentWidth", opt.IndentWidth),
		i("ColumnLimit", opt.ColumnLimit),
		b("UseTab", opt.UseTab),
		b("SpacesInParens", opt.SpacesInParens),
		b("SpaceBeforeParens", opt.SpaceBeforeParens),
		b("AlignArguments", opt.AlignArguments),
		b("ClosingParensOnNewLine", opt.ClosingParensOnNewLine),
		i("KeepShortStatementOnSameLine", opt.KeepShortStatementOnSameLine),
		b("AlwaysBreakAfterFirstArgument", opt.AlwaysBreakAfterFirstArgument),
		b("BreakBeforeKeywordArgument", opt.BreakBeforeKeywordArgument),
		b("AlignOptions", opt.AlignOptions),
	}
	slices.SortFunc(out, func(a, b entry) int { return strings.Compare(a.key, b.key) })
	return out
}

// Dump writes opt as a YAML style document, keys in alphabetical order,
// framed by explicit "---" and "..." markers.
func Dump(w io.Writer, opt format.Options) error {
	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries(opt) {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: e.tag, Value: e.value},
		)
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return fmt.Errorf("failed to encode style: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode style: %w", err)
	}
	_, err := io.WriteString(w, "...\n")
	return err
}

// DumpTOML writes opt in the .cmake-format.toml layout.
func DumpTOML(w io.Writer, opt format.Options) error {
	if err := toml.NewEncoder(w).Encode(opt); err != nil {
		return fmt.Errorf("failed to encode style: %w", err)
	}
	return nil
}
