package parser

import (
	"fmt"
	"strings"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(input string) Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.cmake", []byte(input)))
	bag := diag.NewBag(64)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return ParseFile(lx, Options{Reporter: diag.BagReporter{Bag: bag}})
}

// shape renders the tree as Kind lists, one invocation per bracket group.
func shape(n *cst.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Kind == cst.CommandInvocation {
			parts = append(parts, "["+shape(c)+"]")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s(%q)", c.Kind, c.Token.Text))
	}
	return strings.Join(parts, " ")
}
