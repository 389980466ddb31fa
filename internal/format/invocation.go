package format

import (
	"cmakefmt/internal/cst"
	"cmakefmt/internal/token"
)

// invState is the per-invocation printing state.
type invState struct {
	base        int  // колонка отступа самой команды
	forced      bool // вся команда печатается одной строкой
	hasNewlines bool
	isOption    bool

	depth     int
	gap       bool // в исходнике был пробел или перевод строки с прошлого токена
	first     bool // после '(' ещё ничего не напечатано
	padOpen   bool // внутренний пробел после '(' ещё не выведен
	pad       int  // выравнивание option(...) перед следующим аргументом
	brokeLine bool // внутри скобок был выведен перевод строки

	positional int
	total      int
}

func (p *printer) printInvocation(inv *cst.Node) {
	role := token.LookupBlock(inv.Name())
	if role == token.BlockClose && p.indentLevel > 0 {
		p.indentLevel--
	}
	level := p.indentLevel
	if role == token.BlockMiddle && level > 0 {
		level--
	}

	st := invState{
		base:     level * p.opt.IndentWidth,
		isOption: p.opt.AlignOptions && isOption(inv),
	}
	if k := p.opt.KeepShortStatementOnSameLine; k > 0 {
		st.forced = p.measure(inv, level) <= k
	}
	st.hasNewlines = spansLines(inv.Children, p.opt.BreakBeforeKeywordArgument)

	p.writer.Indent(st.base)
	for i, c := range inv.Children {
		switch {
		case c.Kind == cst.Identifier:
			p.writer.WriteString(c.Token.Text)
			p.argIndent = st.base + len(c.Token.Text) + 1
		case c.Kind == cst.Space:
			st.gap = true
		case c.Kind == cst.Newline:
			p.printNewline(inv.Children, i, &st)
		case c.IsComment():
			p.separate(&st)
			p.writer.WriteString(c.Token.Text)
		case c.Kind == cst.LParen:
			p.printOpen(&st)
		case c.Kind == cst.RParen:
			p.printClose(&st)
		default:
			p.printArgument(c, &st)
		}
	}

	if role == token.BlockOpen {
		p.indentLevel++
	}
}

func (p *printer) printNewline(children []*cst.Node, i int, st *invState) {
	if st.depth == 0 {
		if st.forced {
			st.gap = true
			return
		}
		p.writer.Newline()
		st.gap = false
		return
	}

	suppress := false
	if onlyBlankUntilClose(children, i) && !afterLineComment(children, i) {
		// перевод строки перед вложенной ')' всегда убирается
		if st.depth > 1 || !p.opt.ClosingParensOnNewLine || !st.brokeLine {
			suppress = true
		}
	}
	if st.forced || suppress {
		st.gap = true
		return
	}
	p.writer.Newline()
	st.gap, st.first, st.padOpen, st.pad = false, false, false, 0
	st.brokeLine = true
}

func (p *printer) printOpen(st *invState) {
	if st.depth == 0 {
		atStart := p.writer.AtLineStart()
		p.writer.Indent(st.base)
		if p.opt.SpaceBeforeParens {
			if !atStart {
				p.writer.Spaces(1)
			}
			p.argIndent++
		}
	} else {
		p.separate(st)
	}
	p.writer.WriteString("(")
	st.depth++
	st.gap, st.first, st.padOpen, st.pad = false, true, p.opt.SpacesInParens, 0
}

func (p *printer) printClose(st *invState) {
	atStart := p.writer.AtLineStart()
	if st.depth <= 1 {
		switch {
		case p.opt.ClosingParensOnNewLine && !st.forced && st.brokeLine && !atStart:
			p.writer.Newline()
		case p.opt.SpacesInParens && !st.first && !atStart:
			p.writer.Spaces(1)
		}
		p.writer.Indent(st.base)
	} else {
		switch {
		case atStart:
			p.writer.Indent(p.continuation(st))
		case p.opt.SpacesInParens && !st.first:
			p.writer.Spaces(1)
		}
	}
	p.writer.WriteString(")")
	if st.depth > 0 {
		st.depth--
	}
	st.gap, st.first, st.padOpen, st.pad = false, false, false, 0
}

func (p *printer) printArgument(arg *cst.Node, st *invState) {
	text := printedText(arg)
	st.total++
	positional := token.IsPositional(text)
	if positional {
		st.positional++
	}

	if !st.forced && st.depth > 0 && st.gap && !st.first && !p.writer.AtLineStart() {
		afterFirst := p.opt.AlwaysBreakAfterFirstArgument && st.hasNewlines && st.positional == 2
		beforeKeyword := p.opt.BreakBeforeKeywordArgument && token.IsArgumentKeyword(text)
		if afterFirst || beforeKeyword {
			p.writer.Newline()
			st.brokeLine = true
		}
	}

	p.separate(st)
	p.writer.WriteString(text)

	if st.isOption {
		switch st.total {
		case 1:
			st.pad = max(p.optMax1-argWidth(arg), 0)
		case 2:
			st.pad = max(p.optMax2-argWidth(arg), 0)
		}
	}
}

// separate writes whatever goes before the next token: indentation on a
// fresh line, the inner paren pad, or a single space (plus pending option
// padding) where the source had whitespace. Glued tokens stay glued.
func (p *printer) separate(st *invState) {
	switch {
	case p.writer.AtLineStart():
		p.writer.Indent(p.continuation(st))
	case st.padOpen:
		p.writer.Spaces(1)
	case st.gap && !st.first:
		p.writer.Spaces(st.pad + 1)
	}
	st.gap, st.first, st.padOpen, st.pad = false, false, false, 0
}

// continuation returns the indentation column for a token that starts a new
// line inside the invocation.
func (p *printer) continuation(st *invState) int {
	switch {
	case st.depth == 0:
		return st.base
	case p.opt.AlignArguments:
		return p.argIndent
	default:
		return st.base + p.opt.IndentWidth
	}
}

// spansLines reports whether the invocation will be printed on more than one
// line regardless of AlwaysBreakAfterFirstArgument: a line break in the
// source before its last token, or a keyword that BreakBeforeKeywordArgument
// moves to a new line. Line breaks trailing an unclosed invocation belong to
// the end of the file and do not count.
func spansLines(children []*cst.Node, breakKeywords bool) bool {
	last := len(children) - 1
	for last >= 0 && (children[last].Kind == cst.Space || children[last].Kind == cst.Newline) {
		last--
	}
	depth := 0
	gap, afterOpen := false, false
	for _, c := range children[:last+1] {
		switch {
		case c.Kind == cst.Newline:
			return true
		case c.Kind == cst.Space:
			gap = true
			continue
		case c.Kind == cst.LParen:
			depth++
			afterOpen = true
		case c.Kind == cst.RParen:
			depth--
			afterOpen = false
		case c.Kind == cst.Identifier || c.IsComment():
			afterOpen = false
		default:
			if breakKeywords && depth > 0 && gap && !afterOpen && token.IsArgumentKeyword(printedText(c)) {
				return true
			}
			afterOpen = false
		}
		gap = false
	}
	return false
}

// onlyBlankUntilClose reports whether only spaces and line breaks follow
// children[i] up to the next ')' or the end of the invocation.
func onlyBlankUntilClose(children []*cst.Node, i int) bool {
	for _, c := range children[i+1:] {
		switch c.Kind {
		case cst.Space, cst.Newline:
			continue
		case cst.RParen:
			return true
		default:
			return false
		}
	}
	return true
}

// afterLineComment reports whether the nearest non-space token before
// children[i] is a line comment.
func afterLineComment(children []*cst.Node, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if children[j].Kind == cst.Space {
			continue
		}
		return children[j].Kind == cst.LineComment
	}
	return false
}
