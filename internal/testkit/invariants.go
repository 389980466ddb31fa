package testkit

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/source"
	"cmakefmt/internal/token"
)

// CheckLossless reports an error when the leaves of tree do not spell out
// content byte for byte.
func CheckLossless(tree *cst.Node, content []byte) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	var buf bytes.Buffer
	buf.Grow(len(content))
	for _, tok := range tree.Leaves() {
		buf.WriteString(tok.Text)
	}
	got := buf.Bytes()
	if bytes.Equal(got, content) {
		return nil
	}
	at := 0
	for at < len(got) && at < len(content) && got[at] == content[at] {
		at++
	}
	return fmt.Errorf("tree text differs from source at byte %d (tree %d bytes, source %d bytes)", at, len(got), len(content))
}

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) every leaf span points to sf and is non-empty
// 2) leaves are contiguous: each one starts where the previous ended
// 3) leaf text equals the source slice under its span
// 4) the leaves cover the whole file
// 5) every inner node span contains the spans of its children
func CheckSpanInvariants(tree *cst.Node, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	prev := source.Span{File: sf.ID}
	for i, tok := range tree.Leaves() {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("leaf %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("leaf %d (%s) has empty span %v", i, tok.Kind, sp)
		}
		if !prev.Adjacent(sp) {
			return fmt.Errorf("leaf %d (%s) starts at %d, previous ended at %d", i, tok.Kind, sp.Start, prev.End)
		}
		if sp.End > lenContent {
			return fmt.Errorf("leaf %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if string(sf.Content[sp.Start:sp.End]) != tok.Text {
			return fmt.Errorf("leaf %d (%s) text %q does not match source %q", i, tok.Kind, tok.Text, sf.Content[sp.Start:sp.End])
		}
		prev = sp
	}
	if prev.End != lenContent {
		return fmt.Errorf("leaves end at %d, file has %d bytes", prev.End, lenContent)
	}
	return checkNesting(tree)
}

func checkNesting(tree *cst.Node) error {
	var err error
	tree.Walk(func(n *cst.Node) bool {
		if err != nil || n.IsLeaf() {
			return false
		}
		outer := n.Span()
		for _, child := range n.Children {
			inner := child.Span()
			if !child.IsLeaf() && inner.Empty() {
				continue
			}
			if !outer.Contains(inner) {
				err = fmt.Errorf("%s %v does not contain child %s %v", n.Kind, outer, child.Kind, inner)
				return false
			}
		}
		return true
	})
	return err
}

// HasErrorTokens reports whether the lexer produced any Error token in tree.
func HasErrorTokens(tree *cst.Node) bool {
	found := false
	tree.Walk(func(n *cst.Node) bool {
		if n.IsLeaf() && n.Token.Kind == token.Error {
			found = true
		}
		return !found
	})
	return found
}

// CheckSameContent compares the non-whitespace tokens of two trees: kinds
// and text must match one to one. Comments count as content.
func CheckSameContent(before, after *cst.Node) error {
	a, b := contentTokens(before), contentTokens(after)
	n := min(len(a), len(b))
	for i := range n {
		if a[i].Kind != b[i].Kind || a[i].Text != b[i].Text {
			return fmt.Errorf("token %d differs: %s %q became %s %q (line %d)", i, a[i].Kind, a[i].Text, b[i].Kind, b[i].Text, b[i].Line)
		}
	}
	if len(a) != len(b) {
		return fmt.Errorf("token count changed: %d became %d", len(a), len(b))
	}
	return nil
}

func contentTokens(tree *cst.Node) []token.Token {
	leaves := tree.Leaves()
	out := leaves[:0:0]
	for _, tok := range leaves {
		if tok.Kind == token.Space || tok.Kind == token.Newline {
			continue
		}
		out = append(out, tok)
	}
	return out
}
