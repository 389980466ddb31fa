package testkit

import (
	"strings"
	"testing"

	"cmakefmt/internal/lexer"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
)

func parseSource(t *testing.T, src string) (*source.File, *parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("test.cmake", []byte(src)))
	res := parser.ParseFile(lexer.New(sf, lexer.Options{}), parser.Options{})
	return sf, &res
}

func TestInvariantsHold(t *testing.T) {
	inputs := []string{
		"",
		"project(demo)\n",
		"if(A)\r\n  set(X 1) # note\r\nendif()\r\n",
		"#[[block\ncomment]] foo(\"a\\\"b\" [=[x]=])\n",
		"set(X \"unterminated\n",
		"foo bar )\n",
	}
	for _, src := range inputs {
		sf, res := parseSource(t, src)
		if err := CheckLossless(res.Tree, sf.Content); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := CheckSpanInvariants(res.Tree, sf); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if err := CheckSameContent(res.Tree, res.Tree); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
}

func TestCheckSameContentDetectsChange(t *testing.T) {
	_, a := parseSource(t, "set(X 1)\n")
	_, b := parseSource(t, "set(X  1)\n")
	if err := CheckSameContent(a.Tree, b.Tree); err != nil {
		t.Fatalf("whitespace change must be ignored: %v", err)
	}
	_, c := parseSource(t, "set(X 2)\n")
	err := CheckSameContent(a.Tree, c.Tree)
	if err == nil || !strings.Contains(err.Error(), `"1"`) {
		t.Fatalf("expected token difference, got %v", err)
	}
	_, d := parseSource(t, "set(X 1 2)\n")
	if err := CheckSameContent(a.Tree, d.Tree); err == nil {
		t.Fatalf("expected token count difference")
	}
}

func TestHasErrorTokens(t *testing.T) {
	_, ok := parseSource(t, "set(X 1)\n")
	if HasErrorTokens(ok.Tree) {
		t.Fatalf("unexpected error token")
	}
	_, bad := parseSource(t, "set(X \"open\n")
	if !HasErrorTokens(bad.Tree) {
		t.Fatalf("expected error token")
	}
}
