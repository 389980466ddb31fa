package driver

import (
	"cmakefmt/internal/cst"
	"cmakefmt/internal/diag"
	"cmakefmt/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Node
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fs.Get(fileID), maxDiagnostics), nil
}

// ParseSource is Parse for in-memory input (stdin).
func ParseSource(name string, src []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	return parseLoaded(fs, fs.Get(fs.AddVirtual(name, src)), maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	tree := parseWith(file, bag, diag.BagReporter{Bag: bag})
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Bag:     bag,
	}
}
