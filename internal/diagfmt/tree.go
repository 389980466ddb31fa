package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cmakefmt/internal/cst"
	"cmakefmt/internal/source"
)

type TreeNodeOutput struct {
	Kind     string           `json:"kind"`
	Name     string           `json:"name,omitempty"`
	Text     string           `json:"text,omitempty"`
	Span     source.Span      `json:"span"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// FormatTreePretty prints the syntax tree with box-drawing guides:
//
//	File (1:1-3:1)
//	├─ CommandInvocation project (1:1-1:14)
//	│  ├─ Identifier "project" (1:1-1:8)
//	...
//
// Trivia leaves are printed too unless skipTrivia is set.
func FormatTreePretty(w io.Writer, tree *cst.Node, fs *source.FileSet, skipTrivia bool) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	if _, err := fmt.Fprintln(w, treeLabel(tree, fs)); err != nil {
		return err
	}
	writeChildren(w, tree, fs, "", skipTrivia)
	return nil
}

func writeChildren(w io.Writer, n *cst.Node, fs *source.FileSet, prefix string, skipTrivia bool) {
	children := n.Children
	if skipTrivia {
		children = children[:0:0]
		for _, c := range n.Children {
			if c.Kind != cst.Space && c.Kind != cst.Newline {
				children = append(children, c)
			}
		}
	}
	for i, c := range children {
		branch, next := "├─ ", "│  "
		if i == len(children)-1 {
			branch, next = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, treeLabel(c, fs))
		if !c.IsLeaf() {
			writeChildren(w, c, fs, prefix+next, skipTrivia)
		}
	}
}

func treeLabel(n *cst.Node, fs *source.FileSet) string {
	span := formatSpan(n.Span(), fs)
	switch {
	case n.Kind == cst.File:
		return fmt.Sprintf("File (%s)", span)
	case n.Kind == cst.CommandInvocation:
		return fmt.Sprintf("CommandInvocation %s (%s)", n.Name(), span)
	default:
		return fmt.Sprintf("%s %q (%s)", n.Kind, n.Token.Text, span)
	}
}

// FormatTreeJSON writes the tree as nested JSON objects.
func FormatTreeJSON(w io.Writer, tree *cst.Node) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTreeOutput(tree))
}

func buildTreeOutput(n *cst.Node) TreeNodeOutput {
	out := TreeNodeOutput{Kind: n.Kind.String(), Span: n.Span()}
	if n.IsLeaf() {
		out.Text = n.Token.Text
		return out
	}
	if n.Kind == cst.CommandInvocation {
		out.Name = n.Name()
	}
	out.Children = make([]TreeNodeOutput, 0, len(n.Children))
	for _, c := range n.Children {
		out.Children = append(out.Children, buildTreeOutput(c))
	}
	return out
}
