package format

import (
	"cmakefmt/internal/cst"

	"github.com/mattn/go-runewidth"
)

// scanOptionRun computes the column maxima for the run of option(...)
// invocations starting at items[start]. The run goes on through comments and
// single line breaks; a blank line or any other item ends it.
func (p *printer) scanOptionRun(items []*cst.Node, start int) {
	p.optMax1, p.optMax2 = 0, 0
	newlines := 0
	i := start
scan:
	for ; i < len(items); i++ {
		item := items[i]
		switch {
		case item.Kind == cst.Newline:
			newlines++
			if newlines > 1 {
				break scan
			}
		case item.Kind == cst.Space:
		case item.IsComment():
			newlines = 0
		case item.Kind == cst.CommandInvocation && isOption(item):
			newlines = 0
			w1, w2 := optionArgWidths(item)
			p.optMax1 = max(p.optMax1, w1)
			p.optMax2 = max(p.optMax2, w2)
		default:
			break scan
		}
	}
	p.optRunEnd = i
}

func (p *printer) resetOptionRun() {
	p.optMax1, p.optMax2 = 0, 0
	p.optRunEnd = 0
}

// optionArgWidths returns the display widths of the first two arguments.
func optionArgWidths(inv *cst.Node) (w1, w2 int) {
	idx := 0
	for _, c := range inv.Children {
		if !isArgumentLike(c) {
			continue
		}
		switch idx {
		case 0:
			w1 = argWidth(c)
		case 1:
			w2 = argWidth(c)
		default:
			return w1, w2
		}
		idx++
	}
	return w1, w2
}

func argWidth(n *cst.Node) int {
	return runewidth.StringWidth(printedText(n))
}
