package lexer

import (
	"cmakefmt/internal/diag"
	"cmakefmt/internal/token"
)

func (lx *Lexer) scanSpace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isHorizontalSpace(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '\r' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				break
			}
			lx.cursor.Bump()
			continue
		}
		break
	}
	return lx.make(token.Space, start)
}

// scanQuoted reads "..." where a backslash escapes the following byte and
// line breaks are allowed inside.
func (lx *Lexer) scanQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Bump() {
		case '"':
			return lx.make(token.QuotedArgument, start)
		case '\\':
			lx.cursor.Bump()
		}
	}
	return lx.fail(start, diag.LexUnterminatedQuoted, "unterminated quoted argument")
}

// scanUnquoted reads a bare word up to whitespace, a paren, '#' or '"'.
func (lx *Lexer) scanUnquoted() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isUnquotedStop(b) {
			break
		}
		lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			if lx.cursor.Peek() == '\r' {
				if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
					lx.cursor.Bump()
				}
			}
			lx.cursor.Bump()
		}
	}
	return lx.make(token.UnquotedArgument, start)
}

func isUnquotedStop(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '(', ')', '#', '"':
		return true
	default:
		return false
	}
}
