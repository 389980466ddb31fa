package format

// Writer accumulates formatted output and tracks whether the next write
// starts a fresh line that still needs indentation.
type Writer struct {
	opt         Options
	buf         []byte
	atLineStart bool
}

// NewWriter creates a new formatting writer.
func NewWriter(opt Options, sizeHint int) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, sizeHint),
		atLineStart: true,
	}
}

// Bytes returns the accumulated formatted output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// AtLineStart reports whether nothing has been written on the current line.
func (w *Writer) AtLineStart() bool {
	return w.atLineStart
}

// Indent writes indentation reaching column col, but only at the start of a
// line. With UseTab the column is rendered as col/IndentWidth tabs followed by
// col%IndentWidth spaces.
func (w *Writer) Indent(col int) {
	if !w.atLineStart {
		return
	}
	if col > 0 {
		if w.opt.UseTab {
			for range col / w.opt.IndentWidth {
				w.buf = append(w.buf, '\t')
			}
			col %= w.opt.IndentWidth
		}
		for range col {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes text verbatim. Text may span lines (bracket arguments,
// multi-line quoted arguments); the writer never rewrites it.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	w.atLineStart = false
}

// Spaces writes n spaces.
func (w *Writer) Spaces(n int) {
	for range n {
		w.buf = append(w.buf, ' ')
	}
	if n > 0 {
		w.atLineStart = false
	}
}

// Newline ends the current line.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}
