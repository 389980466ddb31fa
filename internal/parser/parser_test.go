package parser

import (
	"strings"
	"testing"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/source"
)

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple invocation",
			input: "project(demo)\n",
			want:  `[Identifier("project") LParen("(") UnquotedArgument("demo") RParen(")")] Newline("\n")`,
		},
		{
			name:  "trivia before paren",
			input: "set (x)",
			want:  `[Identifier("set") Space(" ") LParen("(") UnquotedArgument("x") RParen(")")]`,
		},
		{
			name:  "nested parens are flattened",
			input: "if((A OR B) AND C)",
			want: `[Identifier("if") LParen("(") LParen("(") UnquotedArgument("A") Space(" ") UnquotedArgument("OR") ` +
				`Space(" ") UnquotedArgument("B") RParen(")") Space(" ") UnquotedArgument("AND") Space(" ") ` +
				`UnquotedArgument("C") RParen(")")]`,
		},
		{
			name:  "comments and newlines inside",
			input: "f(a # c\n  \"b\")",
			want: `[Identifier("f") LParen("(") UnquotedArgument("a") Space(" ") LineComment("# c") Newline("\n") ` +
				`Space("  ") QuotedArgument("\"b\"") RParen(")")]`,
		},
		{
			name:  "bare word leaves trivia at top level",
			input: "foo # c\nbar()",
			want:  `[Identifier("foo")] Space(" ") LineComment("# c") Newline("\n") [Identifier("bar") LParen("(") RParen(")")]`,
		},
		{
			name:  "stray tokens at top level",
			input: ") \"q\" x()",
			want:  `RParen(")") Space(" ") QuotedArgument("\"q\"") Space(" ") [Identifier("x") LParen("(") RParen(")")]`,
		},
		{
			name:  "top level comments",
			input: "#[[b]]\n# l",
			want:  `BracketComment("#[[b]]") Newline("\n") LineComment("# l")`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := parseSource(tt.input)
			if got := shape(res.Tree); got != tt.want {
				t.Fatalf("shape mismatch\nwant: %s\ngot:  %s", tt.want, got)
			}
			if got := res.Tree.Text(); got != tt.input {
				t.Fatalf("lossless violated: %q != %q", got, tt.input)
			}
		})
	}
}

func TestInvocationFirstChildIsIdentifier(t *testing.T) {
	res := parseSource("a(b c)\nb ( )\n\tc\n")
	for _, c := range res.Tree.Children {
		if c.Kind != cst.CommandInvocation {
			continue
		}
		if c.Children[0].Kind != cst.Identifier {
			t.Fatalf("first child = %v", c.Children[0].Kind)
		}
	}
}

func TestUnclosedParenReported(t *testing.T) {
	res := parseSource("if((A\n")
	inv := res.Tree.Children[0]
	if inv.Kind != cst.CommandInvocation || inv.Name() != "if" {
		t.Fatalf("unexpected tree: %s", shape(res.Tree))
	}
	if res.Tree.Text() != "if((A\n" {
		t.Fatalf("lossless violated")
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnclosedParen || len(items[0].Notes) != 1 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(res.Bag))
	}
	if items[0].Severity != diag.SevWarning {
		t.Fatalf("unclosed paren must be a warning")
	}
}

func TestLexErrorKeptAsLeaf(t *testing.T) {
	res := parseSource("message(\"oops)\n")
	inv := res.Tree.Children[0]
	last := inv.Children[len(inv.Children)-1]
	if last.Kind != cst.Error || last.Token.Text != "\"oops)\n" {
		t.Fatalf("last child = %v %q", last.Kind, last.Token.Text)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected lexer error, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestStrayTokenWarning(t *testing.T) {
	res := parseSource(")")
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynStrayToken {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(res.Bag))
	}
}

func TestMissingParenIsInfo(t *testing.T) {
	res := parseSource("foo\n")
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynMissingParen || items[0].Severity != diag.SevInfo {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(res.Bag))
	}
}

func TestDeepNestingDoesNotRecurse(t *testing.T) {
	const depth = 200000
	src := "f" + strings.Repeat("(", depth) + strings.Repeat(")", depth)
	tree := Parse([]byte(src))
	if len(tree.Children) != 1 {
		t.Fatalf("expected one invocation, got %d items", len(tree.Children))
	}
	if got := len(tree.Children[0].Children); got != 2*depth+1 {
		t.Fatalf("children = %d", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "  \n\t\n"} {
		tree := Parse([]byte(in))
		for _, c := range tree.Children {
			if !c.IsTrivia() {
				t.Fatalf("unexpected %v in %q", c.Kind, in)
			}
		}
		if tree.Text() != in {
			t.Fatalf("lossless violated for %q", in)
		}
	}
}

func TestMaxErrors(t *testing.T) {
	bag := diag.NewBag(64)
	p := Parser{opts: Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 1}}
	p.report(diag.SynStrayToken, diag.SevError, source.Span{}, "first")
	p.report(diag.SynStrayToken, diag.SevError, source.Span{}, "second")
	if bag.Len() != 1 {
		t.Fatalf("expected MaxErrors to cap reports, got %d", bag.Len())
	}
}
