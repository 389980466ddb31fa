package lexer

import (
	"cmakefmt/internal/diag"
	"cmakefmt/internal/token"
)

// openBracket tries to read '[' '='* '[' at the cursor. On failure the cursor
// is left where it started.
func (lx *Lexer) openBracket() (level int, ok bool) {
	m := lx.cursor.Mark()
	if !lx.cursor.Eat('[') {
		return 0, false
	}
	for lx.cursor.Eat('=') {
		level++
	}
	if !lx.cursor.Eat('[') {
		lx.cursor.Reset(m)
		return 0, false
	}
	return level, true
}

// closeBracket consumes input up to and including ']' '='*level ']'.
// It returns false when the input ends first.
func (lx *Lexer) closeBracket(level int) bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != ']' {
			continue
		}
		m := lx.cursor.Mark()
		n := 0
		for lx.cursor.Eat('=') {
			n++
		}
		if n == level && lx.cursor.Eat(']') {
			return true
		}
		// "]=]" с неверным числом '=' может начинать настоящий закрывающий
		lx.cursor.Reset(m)
	}
	return false
}

func (lx *Lexer) scanBracketArgument() (token.Token, bool) {
	start := lx.cursor.Mark()
	level, ok := lx.openBracket()
	if !ok {
		return token.Token{}, false
	}
	if !lx.closeBracket(level) {
		return lx.fail(start, diag.LexUnterminatedBracket, "unterminated bracket argument"), true
	}
	return lx.make(token.BracketArgument, start), true
}

// scanComment reads '#[=[...]=]' bracket comments and '#...' line comments.
// A failed bracket opener falls back to a line comment.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	if level, ok := lx.openBracket(); ok {
		if !lx.closeBracket(level) {
			return lx.fail(start, diag.LexUnterminatedBracketComment, "unterminated bracket comment")
		}
		return lx.make(token.BracketComment, start)
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		if b == '\r' {
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
				break
			}
		}
		lx.cursor.Bump()
	}
	return lx.make(token.LineComment, start)
}
