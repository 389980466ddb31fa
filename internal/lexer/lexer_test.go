package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"cmakefmt/internal/diag"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/source"
	"cmakefmt/internal/token"

	"github.com/google/go-cmp/cmp"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.cmake", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

type tk struct {
	Kind token.Kind
	Text string
}

func lexAll(t *testing.T, input string) ([]tk, *testReporter) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	var out []tk
	for _, tok := range lx.All() {
		out = append(out, tk{tok.Kind, tok.Text})
	}
	return out, rep
}

func expectTokens(t *testing.T, input string, want []tk) {
	t.Helper()
	got, rep := lexAll(t, input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens for %q mismatch (-want +got):\n%s\nerrors: %v", input, diff, rep.ErrorMessages())
	}
}

func TestCommandInvocation(t *testing.T) {
	expectTokens(t, "add_library(foo a.c)\n", []tk{
		{token.UnquotedArgument, "add_library"},
		{token.LParen, "("},
		{token.UnquotedArgument, "foo"},
		{token.Space, " "},
		{token.UnquotedArgument, "a.c"},
		{token.RParen, ")"},
		{token.Newline, "\n"},
	})
}

func TestWhitespaceCoalescing(t *testing.T) {
	expectTokens(t, " \t  x\r\n\n", []tk{
		{token.Space, " \t  "},
		{token.UnquotedArgument, "x"},
		{token.Newline, "\r\n"},
		{token.Newline, "\n"},
	})
}

func TestLoneCarriageReturnIsSpace(t *testing.T) {
	expectTokens(t, "a\r b", []tk{
		{token.UnquotedArgument, "a"},
		{token.Space, "\r "},
		{token.UnquotedArgument, "b"},
	})
}

func TestQuotedArgument(t *testing.T) {
	tests := []struct {
		name, input, text string
	}{
		{"simple", `"hello world"`, `"hello world"`},
		{"escaped quote", `"say \"hi\""`, `"say \"hi\""`},
		{"escaped backslash before quote", `"a\\" b`, `"a\\"`},
		{"multiline", "\"line1\nline2\"", "\"line1\nline2\""},
		{"parens and hash", `"(#)"`, `"(#)"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.QuotedArgument || tok.Text != tt.text {
				t.Fatalf("got %v %q, want QuotedArgument %q", tok.Kind, tok.Text, tt.text)
			}
		})
	}
}

func TestBracketArgument(t *testing.T) {
	expectTokens(t, "[[a]] [=[x]]y]=] [==[]=]]==]", []tk{
		{token.BracketArgument, "[[a]]"},
		{token.Space, " "},
		{token.BracketArgument, "[=[x]]y]=]"},
		{token.Space, " "},
		{token.BracketArgument, "[==[]=]]==]"},
	})
}

func TestBracketFallbackToUnquoted(t *testing.T) {
	expectTokens(t, "[=x] [", []tk{
		{token.UnquotedArgument, "[=x]"},
		{token.Space, " "},
		{token.UnquotedArgument, "["},
	})
}

func TestComments(t *testing.T) {
	expectTokens(t, "# line\n#[[block\ncomment]]x #[=not bracket\n#", []tk{
		{token.LineComment, "# line"},
		{token.Newline, "\n"},
		{token.BracketComment, "#[[block\ncomment]]"},
		{token.UnquotedArgument, "x"},
		{token.Space, " "},
		{token.LineComment, "#[=not bracket"},
		{token.Newline, "\n"},
		{token.LineComment, "#"},
	})
}

func TestLineCommentStopsBeforeCRLF(t *testing.T) {
	expectTokens(t, "# c\r\n", []tk{
		{token.LineComment, "# c"},
		{token.Newline, "\r\n"},
	})
}

func TestUnquotedEscapes(t *testing.T) {
	expectTokens(t, `a\ b\(c\)\#d\"e f`, []tk{
		{token.UnquotedArgument, `a\ b\(c\)\#d\"e`},
		{token.Space, " "},
		{token.UnquotedArgument, "f"},
	})
	expectTokens(t, "a\\\nb c", []tk{
		{token.UnquotedArgument, "a\\\nb"},
		{token.Space, " "},
		{token.UnquotedArgument, "c"},
	})
}

func TestUnquotedStopsAtQuoteAndHash(t *testing.T) {
	expectTokens(t, `x"y"z#c`, []tk{
		{token.UnquotedArgument, "x"},
		{token.QuotedArgument, `"y"`},
		{token.UnquotedArgument, "z"},
		{token.LineComment, "#c"},
	})
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
		text  string
	}{
		{"quoted", "message(\"oops\n)", diag.LexUnterminatedQuoted, "\"oops\n)"},
		{"bracket argument", "x([=[never]]", diag.LexUnterminatedBracket, "[=[never]]"},
		{"bracket comment", "#[[open", diag.LexUnterminatedBracketComment, "#[[open"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, rep := makeTestLexer(tt.input)
			toks := lx.All()
			last := toks[len(toks)-1]
			if last.Kind != token.Error || last.Text != tt.text {
				t.Fatalf("last token = %v %q, want Error %q", last.Kind, last.Text, tt.text)
			}
			if last.Message == "" {
				t.Fatalf("error token without message")
			}
			if len(rep.diagnostics) != 1 || rep.diagnostics[0].Code != tt.code {
				t.Fatalf("diagnostics = %v", rep.ErrorMessages())
			}
			if next := lx.Next(); next.Kind != token.EOF {
				t.Fatalf("expected EOF after error, got %v", next.Kind)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	lx, _ := makeTestLexer("a(\"x\ny\" b)\r\n  c")
	want := []struct {
		text      string
		line, col uint32
	}{
		{"a", 1, 1},
		{"(", 1, 2},
		{"\"x\ny\"", 1, 3},
		{" ", 2, 3},
		{"b", 2, 4},
		{")", 2, 5},
		{"\r\n", 2, 6},
		{"  ", 3, 1},
		{"c", 3, 3},
	}
	toks := lx.All()
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Text != w.text || toks[i].Line != w.line || toks[i].Col != w.col {
			t.Fatalf("token %d = %q@%d:%d, want %q@%d:%d", i, toks[i].Text, toks[i].Line, toks[i].Col, w.text, w.line, w.col)
		}
	}
}

func TestLossless(t *testing.T) {
	inputs := []string{
		"",
		"project(demo C)\n\nif(WIN32)\n  add_definitions(-DWIN)\nendif()\n",
		"set(x [==[ raw ]] ]==] \"q\\\"\" # tail\r\n)",
		"#[[ unterminated",
		"))((\t\r\r\n\\",
		"option(A \"help\" OFF)#c",
	}
	for _, in := range inputs {
		lx, _ := makeTestLexer(in)
		var b strings.Builder
		var prev uint32
		for _, tok := range lx.All() {
			if tok.Span.Start != prev {
				t.Fatalf("gap before %v at %d in %q", tok.Kind, tok.Span.Start, in)
			}
			if tok.Span.Empty() {
				t.Fatalf("empty %v token in %q", tok.Kind, in)
			}
			prev = tok.Span.End
			b.WriteString(tok.Text)
		}
		if b.String() != in {
			t.Fatalf("round trip mismatch: %q != %q", b.String(), in)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p != n || n.Text != "a" {
		t.Fatalf("Peek/Next mismatch: %+v vs %+v", p, n)
	}
	if eof := func() token.Token { lx.All(); return lx.Next() }(); eof.Kind != token.EOF {
		t.Fatalf("expected sticky EOF")
	}
}
