package driver

import (
	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/format"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/parser"
	"cmakefmt/internal/source"
	"cmakefmt/internal/testkit"
)

// RunFmtCheck parses the file, formats it, re-parses the output and checks
// that the round-trip holds:
//  1. the tree reproduces the source byte for byte;
//  2. formatting keeps every non-whitespace token;
//  3. formatting the output again changes nothing.
//
// It returns (ok, report string).
func RunFmtCheck(sf *source.File, opt format.Options, maxDiagnostics int) (success bool, msg string) {
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	out, tree := format.FormatFile(sf, opt, rep)
	verifyOutput(sf, tree, out, opt, rep)
	for _, d := range bag.Items() {
		if d.Code == diag.FmtNotLossless || d.Code == diag.FmtNotIdempotent {
			return false, "fmt-check: " + d.Message
		}
	}
	return true, "fmt-check: OK"
}

// verifyOutput reports FmtNotLossless and FmtNotIdempotent diagnostics for
// out, the formatted rendition of tree.
func verifyOutput(sf *source.File, tree *cst.Node, out []byte, opt format.Options, rep diag.Reporter) {
	whole := source.Span{File: sf.ID}
	if err := testkit.CheckLossless(tree, sf.Content); err != nil {
		diag.ReportError(rep, diag.FmtNotLossless, whole, "parse is not lossless: "+err.Error()).Emit()
		return
	}

	fs2 := source.NewFileSet()
	f2 := fs2.Get(fs2.AddVirtual(sf.Path, out))
	tree2 := parser.ParseFile(lexer.New(f2, lexer.Options{}), parser.Options{}).Tree

	// Error tokens lose trailing whitespace, their text is not comparable.
	if !testkit.HasErrorTokens(tree) {
		if err := testkit.CheckSameContent(tree, tree2); err != nil {
			diag.ReportError(rep, diag.FmtNotLossless, whole, "formatting changed content: "+err.Error()).Emit()
			return
		}
	}

	again := format.Format(tree2, opt)
	if string(again) != string(f2.Content) {
		diag.ReportError(rep, diag.FmtNotIdempotent, whole, "second formatting pass changed the output").Emit()
	}
}
