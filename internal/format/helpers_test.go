package format

import (
	"testing"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/token"
)

func parseTree(t *testing.T, src string) *cst.Node {
	t.Helper()
	tree := parser.Parse([]byte(src))
	if tree == nil || len(tree.Children) == 0 {
		t.Fatalf("no tree for %q", src)
	}
	return tree
}

type lexeme struct {
	kind token.Kind
	text string
}

// significant returns the non-trivia tokens of src with their text.
func significant(src []byte) []lexeme {
	var out []lexeme
	for _, tok := range parser.Parse(src).Leaves() {
		if tok.Kind == token.Space || tok.Kind == token.Newline {
			continue
		}
		out = append(out, lexeme{kind: tok.Kind, text: tok.Text})
	}
	return out
}
