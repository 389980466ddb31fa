package cst

import (
	"strings"

	"cmakefmt/internal/source"
	"cmakefmt/internal/token"
)

// Kind tags a Node.
type Kind uint8

const (
	File Kind = iota
	CommandInvocation
	Identifier
	UnquotedArgument
	QuotedArgument
	BracketArgument
	LineComment
	BracketComment
	Space
	Newline
	LParen
	RParen
	// Error is a lexer error token kept verbatim.
	Error
)

var kindNames = [...]string{
	File:              "File",
	CommandInvocation: "CommandInvocation",
	Identifier:        "Identifier",
	UnquotedArgument:  "UnquotedArgument",
	QuotedArgument:    "QuotedArgument",
	BracketArgument:   "BracketArgument",
	LineComment:       "LineComment",
	BracketComment:    "BracketComment",
	Space:             "Space",
	Newline:           "Newline",
	LParen:            "LParen",
	RParen:            "RParen",
	Error:             "Error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is a CST node. Leaves carry exactly one token; File and
// CommandInvocation carry children.
type Node struct {
	Kind     Kind
	Token    token.Token
	Children []*Node
}

// LeafKind maps a token kind to the leaf kind it produces.
func LeafKind(k token.Kind) Kind {
	switch k {
	case token.Identifier:
		return Identifier
	case token.UnquotedArgument:
		return UnquotedArgument
	case token.QuotedArgument:
		return QuotedArgument
	case token.BracketArgument:
		return BracketArgument
	case token.LineComment:
		return LineComment
	case token.BracketComment:
		return BracketComment
	case token.Space:
		return Space
	case token.Newline:
		return Newline
	case token.LParen:
		return LParen
	case token.RParen:
		return RParen
	default:
		return Error
	}
}

// NewLeaf wraps a token into a leaf node.
func NewLeaf(tok token.Token) *Node {
	return &Node{Kind: LeafKind(tok.Kind), Token: tok}
}

// IsLeaf reports whether the node carries a token instead of children.
func (n *Node) IsLeaf() bool {
	return n.Kind != File && n.Kind != CommandInvocation
}

// IsTrivia reports whether the node is whitespace, a line break or a comment.
func (n *Node) IsTrivia() bool {
	switch n.Kind {
	case Space, Newline, LineComment, BracketComment:
		return true
	default:
		return false
	}
}

// IsComment reports whether the node is a line or bracket comment.
func (n *Node) IsComment() bool {
	return n.Kind == LineComment || n.Kind == BracketComment
}

// IsArgument reports whether the node is an argument leaf.
func (n *Node) IsArgument() bool {
	switch n.Kind {
	case UnquotedArgument, QuotedArgument, BracketArgument:
		return true
	default:
		return false
	}
}

// Text returns the leaf's source text, or the concatenated text of all
// leaves below n.
func (n *Node) Text() string {
	if n.IsLeaf() {
		return n.Token.Text
	}
	var b strings.Builder
	n.WriteTo(&b)
	return b.String()
}

// WriteTo appends the source text of every leaf below n to b.
func (n *Node) WriteTo(b *strings.Builder) {
	n.Walk(func(leaf *Node) bool {
		if leaf.IsLeaf() {
			b.WriteString(leaf.Token.Text)
		}
		return true
	})
}

// Identifier returns the command name of an invocation, or nil.
func (n *Node) Identifier() *Node {
	if n.Kind != CommandInvocation || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Name returns the command name of an invocation, or "".
func (n *Node) Name() string {
	if id := n.Identifier(); id != nil {
		return id.Token.Text
	}
	return ""
}

// HasParens reports whether an invocation has an argument list.
func (n *Node) HasParens() bool {
	for _, c := range n.Children {
		if c.Kind == LParen {
			return true
		}
	}
	return false
}

// Arguments returns the argument leaves of an invocation at any paren depth.
func (n *Node) Arguments() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsArgument() {
			out = append(out, c)
		}
	}
	return out
}

// Span covers every leaf below n. Empty trees return the zero span.
func (n *Node) Span() source.Span {
	if n.IsLeaf() {
		return n.Token.Span
	}
	var sp source.Span
	first := true
	n.Walk(func(leaf *Node) bool {
		if !leaf.IsLeaf() {
			return true
		}
		if first {
			sp = leaf.Token.Span
			first = false
		} else {
			sp = sp.Cover(leaf.Token.Span)
		}
		return true
	})
	return sp
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur) {
			continue
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// Leaves returns every leaf token below n in document order.
func (n *Node) Leaves() []token.Token {
	var out []token.Token
	n.Walk(func(c *Node) bool {
		if c.IsLeaf() {
			out = append(out, c.Token)
		}
		return true
	})
	return out
}
