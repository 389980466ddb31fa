package style

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/source"
)

func decodeString(t *testing.T, name, content string) (format.Options, []diag.Code, error) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(content)))
	bag := diag.NewBag(32)
	opt, err := Decode(file, format.DefaultOptions(), diag.BagReporter{Bag: bag})
	codes := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		codes = append(codes, d.Code)
	}
	return opt, codes, err
}

func TestDecodeYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mod     func(*format.Options)
		codes   []diag.Code
	}{
		{
			name:    "document markers",
			content: "---\nIndentWidth: 4\nUseTab: Always\n...\n",
			mod:     func(o *format.Options) { o.IndentWidth = 4; o.UseTab = true },
		},
		{
			name:    "use tab never",
			content: "UseTab: Never\n",
		},
		{
			name:    "paren spacing aliases",
			content: "SpacesInParens: Never\nSpaceBeforeParens: ControlStatements\n",
			mod:     func(o *format.Options) { o.SpaceBeforeParens = true },
		},
		{
			name:    "align operands",
			content: "AlignOperands: DontAlign\n",
			mod:     func(o *format.Options) { o.AlignArguments = false },
		},
		{
			name:    "boolean spellings",
			content: "AlignOptions: yes\nClosingParensOnNewLine: 1\nBreakBeforeKeywordArgument: TRUE\nAlignArguments: no\n",
			mod: func(o *format.Options) {
				o.AlignOptions = true
				o.ClosingParensOnNewLine = true
				o.BreakBeforeKeywordArgument = true
				o.AlignArguments = false
			},
		},
		{
			name:    "integers",
			content: "ColumnLimit: 100\nKeepShortStatementOnSameLine: 60\nAlwaysBreakAfterFirstArgument: true\n",
			mod: func(o *format.Options) {
				o.ColumnLimit = 100
				o.KeepShortStatementOnSameLine = 60
				o.AlwaysBreakAfterFirstArgument = true
			},
		},
		{
			name:    "unknown clang-format keys",
			content: "BasedOnStyle: LLVM\nIndentWidth: 3\n",
			mod:     func(o *format.Options) { o.IndentWidth = 3 },
			codes:   []diag.Code{diag.CfgUnknownKey},
		},
		{
			name:    "nested unknown key",
			content: "BraceWrapping:\n  AfterClass: true\n",
			codes:   []diag.Code{diag.CfgUnknownKey},
		},
		{
			name:    "bad integer keeps default",
			content: "IndentWidth: four\n",
			codes:   []diag.Code{diag.CfgBadValue},
		},
		{
			name:    "zero indent rejected",
			content: "IndentWidth: 0\n",
			codes:   []diag.Code{diag.CfgBadValue},
		},
		{
			name:    "sequence value",
			content: "IndentWidth: [1, 2]\n",
			codes:   []diag.Code{diag.CfgBadValue},
		},
		{
			name:    "comments only",
			content: "# nothing here\n",
		},
		{
			name:    "empty",
			content: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, codes, err := decodeString(t, ".cmake_format", tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := format.DefaultOptions()
			if tt.mod != nil {
				tt.mod(&want)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("options mismatch (-want +got):\n%s", diff)
			}
			if !slices.Equal(tt.codes, codes) {
				t.Fatalf("diagnostics = %v, want %v", codes, tt.codes)
			}
		})
	}
}

func TestDecodeYAMLErrors(t *testing.T) {
	for _, content := range []string{
		"- a\n- b\n",
		"IndentWidth: [1\n",
		"just a string\n",
	} {
		got, codes, err := decodeString(t, ".cmake-format.yaml", content)
		if err == nil {
			t.Fatalf("%q: expected an error", content)
		}
		if got != format.DefaultOptions() {
			t.Fatalf("%q: base options not returned on error", content)
		}
		if len(codes) != 1 || codes[0] != diag.CfgParseError {
			t.Fatalf("%q: expected one %s, got %v", content, diag.CfgParseError.ID(), codes)
		}
	}
}

func TestDecodeTOML(t *testing.T) {
	got, codes, err := decodeString(t, ".cmake-format.toml", "IndentWidth = 4\nAlignOptions = true\nFancy = 1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := format.DefaultOptions()
	want.IndentWidth = 4
	want.AlignOptions = true
	if got != want {
		t.Fatalf("options mismatch: %+v", got)
	}
	if len(codes) != 1 || codes[0] != diag.CfgUnknownKey {
		t.Fatalf("expected one unknown key diagnostic, got %v", codes)
	}

	if _, codes, err := decodeString(t, "x.toml", "IndentWidth = \"wide\"\n"); err == nil || len(codes) != 1 {
		t.Fatalf("type mismatch accepted: err=%v codes=%v", err, codes)
	}
	if _, codes, err := decodeString(t, "x.toml", "IndentWidth = 0\n"); err == nil || len(codes) != 1 || codes[0] != diag.CfgBadValue {
		t.Fatalf("invalid value accepted: err=%v codes=%v", err, codes)
	}
}

func TestDumpDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := Dump(&buf, format.DefaultOptions()); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	want := `---
AlignArguments: true
AlignOptions: false
AlwaysBreakAfterFirstArgument: false
BreakBeforeKeywordArgument: false
ClosingParensOnNewLine: false
ColumnLimit: 80
IndentWidth: 2
KeepShortStatementOnSameLine: 0
SpaceBeforeParens: false
SpacesInParens: false
UseTab: false
...
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDumpIsLoadable(t *testing.T) {
	opt := format.Options{
		IndentWidth:                   4,
		ColumnLimit:                   120,
		UseTab:                        true,
		SpacesInParens:                true,
		SpaceBeforeParens:             true,
		ClosingParensOnNewLine:        true,
		KeepShortStatementOnSameLine:  50,
		AlwaysBreakAfterFirstArgument: true,
		BreakBeforeKeywordArgument:    true,
		AlignOptions:                  true,
	}
	var yamlBuf, tomlBuf bytes.Buffer
	if err := Dump(&yamlBuf, opt); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if err := DumpTOML(&tomlBuf, opt); err != nil {
		t.Fatalf("DumpTOML: %v", err)
	}
	for name, content := range map[string]string{
		".cmake_format":      yamlBuf.String(),
		".cmake-format.toml": tomlBuf.String(),
	} {
		got, codes, err := decodeString(t, name, content)
		if err != nil || len(codes) != 0 {
			t.Fatalf("%s: err=%v codes=%v\n%s", name, err, codes, content)
		}
		if diff := cmp.Diff(opt, got); diff != "" {
			t.Fatalf("%s: reloaded style differs (-want +got):\n%s", name, diff)
		}
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	mid := filepath.Join(root, "a")
	deep := filepath.Join(mid, "b", "c")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(path, content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write(filepath.Join(root, ".cmake-format.toml"), "IndentWidth = 8\n")
	write(filepath.Join(mid, ".cmake-format.yaml"), "IndentWidth: 3\n")
	write(filepath.Join(mid, ".cmake_format"), "IndentWidth: 4\n")

	path, ok, err := Find(deep)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if want := filepath.Join(mid, ".cmake_format"); path != want {
		t.Fatalf("Find = %q, want %q", path, want)
	}

	fs := source.NewFileSet()
	opt, used, err := Resolve(fs, "", deep, format.DefaultOptions(), nil)
	if err != nil || used != path || opt.IndentWidth != 4 {
		t.Fatalf("Resolve = %d from %q, err=%v", opt.IndentWidth, used, err)
	}
	opt, used, err = Resolve(fs, filepath.Join(root, ".cmake-format.toml"), deep, format.DefaultOptions(), nil)
	if err != nil || opt.IndentWidth != 8 || used == path {
		t.Fatalf("explicit Resolve = %d from %q, err=%v", opt.IndentWidth, used, err)
	}
}

func TestResolveMissingExplicit(t *testing.T) {
	fs := source.NewFileSet()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	opt, _, err := Resolve(fs, missing, ".", format.DefaultOptions(), nil)
	if err == nil {
		t.Fatalf("expected an error for %s", missing)
	}
	if opt != format.DefaultOptions() {
		t.Fatalf("base options not returned")
	}
}
