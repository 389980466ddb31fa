package diag

import (
	"cmakefmt/internal/source"
)

// Note points at a secondary location, e.g. the outer '(' of an unclosed
// nested paren.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding about a file. Primary is the span the caret
// underlines; the whole-file span (Start == End == 0) is used by checks that
// have no narrower location.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New builds a diagnostic without notes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy of d with one more note.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}
