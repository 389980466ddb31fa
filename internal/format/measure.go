package format

import (
	"math"
	"strings"

	"cmakefmt/internal/cst"
)

// unbounded is the single-line length of invocations that cannot be joined.
const unbounded = math.MaxInt32

// measure returns the length of inv printed on one line at the given level:
// indentation columns, the name, paren padding and one separator wherever the
// source had whitespace. Comments and multi-line arguments make it unbounded.
func (p *printer) measure(inv *cst.Node, level int) int {
	length := level * p.opt.IndentWidth
	depth := 0
	gap, first, padOpen := false, false, false
	for _, c := range inv.Children {
		switch {
		case c.Kind == cst.Identifier:
			length += len(c.Token.Text)
		case c.Kind == cst.Space || c.Kind == cst.Newline:
			gap = true
		case c.IsComment():
			return unbounded
		case c.Kind == cst.LParen:
			if depth == 0 {
				if p.opt.SpaceBeforeParens {
					length++
				}
			} else {
				length += separator(gap, first, padOpen)
			}
			length++
			depth++
			gap, first, padOpen = false, true, p.opt.SpacesInParens
		case c.Kind == cst.RParen:
			if p.opt.SpacesInParens && !first {
				length++
			}
			length++
			depth--
			gap, first, padOpen = false, false, false
		default:
			text := printedText(c)
			if strings.ContainsAny(text, "\r\n") {
				return unbounded
			}
			length += separator(gap, first, padOpen) + len(text)
			gap, first, padOpen = false, false, false
		}
	}
	return length
}

// separator is the number of spaces printed before a token on the same line.
func separator(gap, first, padOpen bool) int {
	if padOpen || (gap && !first) {
		return 1
	}
	return 0
}
