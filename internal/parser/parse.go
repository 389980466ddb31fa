package parser

import (
	"cmakefmt/internal/cst"
	"cmakefmt/internal/lexer"
	"cmakefmt/internal/source"
)

// Parse builds the tree for an in-memory script without collecting diagnostics.
func Parse(src []byte) *cst.Node {
	fs := source.NewFileSet()
	file := fs.Get(fs.Add("<input>", src, source.FileVirtual))
	return ParseFile(lexer.New(file, lexer.Options{}), Options{}).Tree
}
