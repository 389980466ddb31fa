package cst

import (
	"testing"

	"cmakefmt/internal/source"
	"cmakefmt/internal/token"
)

func leaf(k token.Kind, text string, start uint32) *Node {
	return NewLeaf(token.Token{
		Kind: k,
		Text: text,
		Span: source.Span{Start: start, End: start + uint32(len(text))},
	})
}

func sample() *Node {
	inv := &Node{Kind: CommandInvocation, Children: []*Node{
		leaf(token.Identifier, "set", 0),
		leaf(token.LParen, "(", 3),
		leaf(token.UnquotedArgument, "x", 4),
		leaf(token.Space, " ", 5),
		leaf(token.QuotedArgument, `"y"`, 6),
		leaf(token.RParen, ")", 9),
	}}
	return &Node{Kind: File, Children: []*Node{
		leaf(token.LineComment, "# c", 0),
		leaf(token.Newline, "\n", 3),
		inv,
	}}
}

func TestTextAndLeaves(t *testing.T) {
	f := sample()
	if got := f.Text(); got != "# c\nset(x \"y\")" {
		t.Fatalf("Text() = %q", got)
	}
	if n := len(f.Leaves()); n != 8 {
		t.Fatalf("Leaves() = %d", n)
	}
}

func TestInvocationAccessors(t *testing.T) {
	inv := sample().Children[2]
	if inv.Name() != "set" || !inv.HasParens() {
		t.Fatalf("unexpected invocation accessors")
	}
	args := inv.Arguments()
	if len(args) != 2 || args[1].Kind != QuotedArgument {
		t.Fatalf("Arguments() = %v", args)
	}
	if (&Node{Kind: File}).Identifier() != nil {
		t.Fatalf("File has no identifier")
	}
}

func TestLeafKind(t *testing.T) {
	cases := map[token.Kind]Kind{
		token.Identifier:     Identifier,
		token.BracketComment: BracketComment,
		token.RParen:         RParen,
		token.Error:          Error,
		token.EOF:            Error,
	}
	for tk, want := range cases {
		if got := LeafKind(tk); got != want {
			t.Fatalf("LeafKind(%v) = %v, want %v", tk, got, want)
		}
	}
}

func TestWalkSkip(t *testing.T) {
	f := sample()
	var seen []Kind
	f.Walk(func(n *Node) bool {
		seen = append(seen, n.Kind)
		return n.Kind != CommandInvocation
	})
	want := []Kind{File, LineComment, Newline, CommandInvocation}
	if len(seen) != len(want) {
		t.Fatalf("Walk visited %v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Walk visited %v", seen)
		}
	}
}
