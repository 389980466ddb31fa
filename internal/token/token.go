package token

import (
	"cmakefmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32 // 1-based line of the first byte
	Col  uint32 // 1-based column of the first byte
	// Message describes the problem for Error tokens.
	Message string
}

// IsTrivia reports whether the token is whitespace, a line break or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool { return t.Kind.IsComment() }

// IsArgument reports whether the token is an unquoted, quoted or bracket argument.
func (t Token) IsArgument() bool { return t.Kind.IsArgument() }

// Len returns the token width in bytes.
func (t Token) Len() int { return len(t.Text) }
