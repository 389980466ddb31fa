package lexer

import (
	"cmakefmt/internal/diag"
	"cmakefmt/internal/source"
	"cmakefmt/internal/token"
)

// Lexer turns a CMake script into a lossless token stream: whitespace,
// line breaks and comments are tokens like everything else.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	start := lx.cursor.Mark()
	if lx.cursor.EOF() {
		return lx.make(token.EOF, start)
	}

	switch ch := lx.cursor.Peek(); {
	case isHorizontalSpace(ch):
		return lx.scanSpace()
	case ch == '\n':
		lx.cursor.Bump()
		return lx.make(token.Newline, start)
	case ch == '\r':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '\n' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.make(token.Newline, start)
		}
		// одиночный '\r' считаем пробельным символом
		return lx.scanSpace()
	case ch == '(':
		lx.cursor.Bump()
		return lx.make(token.LParen, start)
	case ch == ')':
		lx.cursor.Bump()
		return lx.make(token.RParen, start)
	case ch == '"':
		return lx.scanQuoted()
	case ch == '#':
		return lx.scanComment()
	case ch == '[':
		if tok, ok := lx.scanBracketArgument(); ok {
			return tok
		}
		return lx.scanUnquoted()
	default:
		return lx.scanUnquoted()
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer and returns every token before EOF.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func (lx *Lexer) make(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Line: start.Line,
		Col:  start.Col,
	}
}

// fail consumes the rest of the input into one Error token.
func (lx *Lexer) fail(start Mark, code diag.Code, msg string) token.Token {
	lx.cursor.SkipToEOF()
	tok := lx.make(token.Error, start)
	tok.Message = msg
	lx.errLex(code, tok.Span, msg)
	return tok
}

func isHorizontalSpace(b byte) bool {
	return b == ' ' || b == '\t'
}
