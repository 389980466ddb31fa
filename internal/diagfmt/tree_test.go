package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"cmakefmt/internal/lexer"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
	"cmakefmt/internal/token"
)

func TestFormatTreePretty(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.cmake", []byte("project(demo)\nfoo(a # c\n)\n")))
	tree := parser.ParseFile(lexer.New(sf, lexer.Options{}), parser.Options{}).Tree

	var buf bytes.Buffer
	if err := FormatTreePretty(&buf, tree, fs, true); err != nil {
		t.Fatalf("FormatTreePretty: %v", err)
	}
	want := strings.Join([]string{
		`File (1:1-4:1)`,
		`├─ CommandInvocation project (1:1-1:14)`,
		`│  ├─ Identifier "project" (1:1-1:8)`,
		`│  ├─ LParen "(" (1:8-1:9)`,
		`│  ├─ UnquotedArgument "demo" (1:9-1:13)`,
		`│  └─ RParen ")" (1:13-1:14)`,
		`└─ CommandInvocation foo (2:1-3:2)`,
		`   ├─ Identifier "foo" (2:1-2:4)`,
		`   ├─ LParen "(" (2:4-2:5)`,
		`   ├─ UnquotedArgument "a" (2:5-2:6)`,
		`   ├─ LineComment "# c" (2:7-2:10)`,
		`   └─ RParen ")" (3:1-3:2)`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Fatalf("tree mismatch:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatTreeJSON(t *testing.T) {
	tree := parser.Parse([]byte("set(X 1)\n"))
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, tree); err != nil {
		t.Fatalf("FormatTreeJSON: %v", err)
	}
	var out TreeNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Kind != "File" || len(out.Children) != 2 {
		t.Fatalf("root = %+v", out)
	}
	inv := out.Children[0]
	if inv.Name != "set" || len(inv.Children) != 6 || inv.Children[2].Text != "X" {
		t.Fatalf("invocation = %+v", inv)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.cmake", []byte("foo(a)")))
	lx := lexer.New(sf, lexer.Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatalf("pretty: %v", err)
	}
	if !strings.Contains(pretty.String(), `  1: UnquotedArgument "foo" at 1:1-1:4`) {
		t.Fatalf("pretty tokens:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatalf("json: %v", err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(out) != 5 || out[1].Kind != "LParen" || out[4].Kind != "EOF" {
		t.Fatalf("tokens = %+v", out)
	}
}
