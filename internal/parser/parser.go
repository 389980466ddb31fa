package parser

import (
	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *cst.Node
	Bag  *diag.Bag
}

// Parser хранит состояние парсера на один файл.
type Parser struct {
	lx      *lexer.Lexer  // поток токенов
	pending []token.Token // токены, возвращённые назад (trivia после голого слова)
	opts    Options
}

// frame is one open parenthesis inside an argument list.
type frame struct {
	open token.Token
}

// ParseFile разбирает один файл.
// Never fails: malformed input yields a degenerate but lossless tree.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{lx: lx, opts: opts}
	tree := p.parseFile()

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{Tree: tree, Bag: bag}
}

func (p *Parser) next() token.Token {
	if n := len(p.pending); n > 0 {
		tok := p.pending[0]
		p.pending = p.pending[1:]
		return tok
	}
	return p.lx.Next()
}

func (p *Parser) peek() token.Token {
	if len(p.pending) > 0 {
		return p.pending[0]
	}
	return p.lx.Peek()
}

// unread puts tokens back in front of the stream, keeping their order.
func (p *Parser) unread(toks []token.Token) {
	if len(toks) == 0 {
		return
	}
	p.pending = append(append([]token.Token(nil), toks...), p.pending...)
}

// parseFile: основной цикл верхнего уровня.
// Only an unquoted argument can name a command; anything else that is not
// trivia is kept as a stray leaf.
func (p *Parser) parseFile() *cst.Node {
	file := &cst.Node{Kind: cst.File}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			return file
		case tok.IsTrivia():
			file.Children = append(file.Children, cst.NewLeaf(p.next()))
		case tok.Kind == token.UnquotedArgument:
			file.Children = append(file.Children, p.parseCommandInvocation())
		default:
			tok = p.next()
			if tok.Kind != token.Error {
				p.report(diag.SynStrayToken, diag.SevWarning, tok.Span, "unexpected "+describe(tok)+" at top level")
			}
			file.Children = append(file.Children, cst.NewLeaf(tok))
		}
	}
}

// parseCommandInvocation reads NAME trivia* '(' args ')'. A name that is not
// followed by '(' ends the invocation right away and its trailing trivia stays
// at the top level.
func (p *Parser) parseCommandInvocation() *cst.Node {
	id := p.next()
	id.Kind = token.Identifier
	inv := &cst.Node{Kind: cst.CommandInvocation, Children: []*cst.Node{cst.NewLeaf(id)}}

	var trivia []token.Token
	for p.peek().IsTrivia() {
		trivia = append(trivia, p.next())
	}
	if p.peek().Kind != token.LParen {
		p.unread(trivia)
		p.report(diag.SynMissingParen, diag.SevInfo, id.Span, "command "+id.Text+" has no argument list")
		return inv
	}
	for _, tok := range trivia {
		inv.Children = append(inv.Children, cst.NewLeaf(tok))
	}
	open := p.next()
	inv.Children = append(inv.Children, cst.NewLeaf(open))
	p.parseArguments(inv, open)
	return inv
}

// parseArguments appends everything up to the ')' matching open. Nested
// groups are flattened into inv; stack holds one frame per open paren so
// nesting depth never grows the Go call stack.
func (p *Parser) parseArguments(inv *cst.Node, open token.Token) {
	stack := []frame{{open: open}}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			p.reportUnclosed(stack)
			return
		case token.LParen:
			stack = append(stack, frame{open: p.next()})
			inv.Children = append(inv.Children, cst.NewLeaf(tok))
		case token.RParen:
			inv.Children = append(inv.Children, cst.NewLeaf(p.next()))
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return
			}
		default:
			inv.Children = append(inv.Children, cst.NewLeaf(p.next()))
		}
	}
}

func (p *Parser) reportUnclosed(stack []frame) {
	// сообщаем о самой внешней скобке, остальные идут заметками
	outer := stack[0].open
	b := diag.ReportWarning(p.opts.Reporter, diag.SynUnclosedParen, outer.Span, "unclosed '(' at end of input")
	for _, fr := range stack[1:] {
		b.WithNote(fr.open.Span, "nested '(' is also unclosed")
	}
	if p.count(diag.SevWarning) {
		b.Emit()
	}
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.LParen:
		return "'('"
	case token.RParen:
		return "')'"
	case token.QuotedArgument:
		return "quoted argument"
	case token.BracketArgument:
		return "bracket argument"
	default:
		return tok.Kind.String()
	}
}
