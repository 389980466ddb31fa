// Package diag defines the diagnostic model shared by the lexer, parser, style
// loader and driver.
//
// Diagnostic is the central record: Severity (Info, Warning, Error), a numeric
// Code with a stable string ID (LEX/SYN/IO/CFG/FMT prefixes), a short Message,
// the Primary span and optional Notes.
//
// Phases emit through a Reporter so that storage stays decoupled from
// production. BagReporter collects into a Bag, which supports limits, sorting,
// deduplication and severity filtering. Rendering lives in internal/diagfmt.
//
// Lexical and syntax diagnostics never stop the pipeline: the formatter always
// receives a tree and prints malformed regions verbatim.
package diag
