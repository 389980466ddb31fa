package format

import (
	"bytes"
	"strings"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
)

// maxBlankLines caps consecutive line breaks between top-level items.
const maxBlankLines = 2

type printer struct {
	opt    Options
	writer *Writer

	indentLevel int // открытые блоки (if, foreach, function, ...)
	argIndent   int // колонка продолжения аргументов текущей команды

	// максимумы ширины первого и второго аргумента в текущей серии option(...)
	optMax1, optMax2 int
	optRunEnd        int // индекс первого элемента после серии
}

// Format renders tree under opt. tree must be a cst.File node.
func Format(tree *cst.Node, opt Options) []byte {
	if tree == nil {
		return nil
	}
	opt = opt.withDefaults()
	p := printer{
		opt:    opt,
		writer: NewWriter(opt, sizeHint(tree)),
	}
	p.printFile(tree)
	return p.writer.Bytes()
}

// Source lexes, parses and formats an in-memory script.
func Source(src []byte, opt Options) []byte {
	return Format(parser.Parse(src), opt)
}

// FormatFile lexes and parses sf, reporting lexical and syntax diagnostics to
// rep (may be nil), and returns the formatted text with the tree it came from.
func FormatFile(sf *source.File, opt Options, rep diag.Reporter) ([]byte, *cst.Node) {
	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Reporter: rep})
	return Format(res.Tree, opt), res.Tree
}

// CheckIdempotent formats src and then formats the result again. ok is false
// when the second pass changes anything.
func CheckIdempotent(src []byte, opt Options) (formatted []byte, ok bool) {
	formatted = Source(src, opt)
	again := Source(formatted, opt)
	return formatted, bytes.Equal(formatted, again)
}

func sizeHint(tree *cst.Node) int {
	n := 0
	tree.Walk(func(c *cst.Node) bool {
		if c.IsLeaf() {
			n += len(c.Token.Text)
		}
		return true
	})
	return n + n/8
}

func (p *printer) printFile(root *cst.Node) {
	pending := 0
	hasContent := false
	for i, child := range root.Children {
		switch child.Kind {
		case cst.Space:
			continue
		case cst.Newline:
			pending++
			continue
		}

		if hasContent {
			breaks := min(pending, maxBlankLines)
			for range breaks {
				p.writer.Newline()
			}
			if breaks == 0 && !p.writer.AtLineStart() {
				// два элемента на одной строке
				p.writer.Spaces(1)
			}
		}
		pending = 0
		hasContent = true

		switch {
		case child.Kind == cst.CommandInvocation:
			if p.opt.AlignOptions && isOption(child) {
				if i >= p.optRunEnd {
					p.scanOptionRun(root.Children, i)
				}
			} else {
				p.resetOptionRun()
			}
			p.printInvocation(child)
		case child.IsComment():
			p.writer.Indent(p.indentLevel * p.opt.IndentWidth)
			p.writer.WriteString(child.Token.Text)
		default:
			// stray token or lexer error
			p.resetOptionRun()
			p.writer.Indent(p.indentLevel * p.opt.IndentWidth)
			p.writer.WriteString(printedText(child))
		}
	}
	if hasContent && !p.writer.AtLineStart() {
		p.writer.Newline()
	}
}

// printedText is the text a leaf is printed with. A lexer error runs to the
// end of the file; its trailing whitespace is dropped so the final line
// break is not duplicated on every run.
func printedText(n *cst.Node) string {
	if n.Kind == cst.Error {
		return strings.TrimRight(n.Token.Text, " \t\r\n")
	}
	return n.Token.Text
}

func isOption(inv *cst.Node) bool {
	name := inv.Name()
	return len(name) == len("option") && strings.EqualFold(name, "option")
}

// isArgumentLike reports whether a child of an invocation is printed as an
// argument. Lexer errors count as arguments so alignment stays consistent.
func isArgumentLike(n *cst.Node) bool {
	return n.IsArgument() || n.Kind == cst.Error
}
