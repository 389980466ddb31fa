package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error is an unterminated quoted argument or bracket construct.
	Error Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LParen is '('.
	LParen
	// RParen is ')'.
	RParen

	// Identifier is a command name. Produced by the parser, never by the lexer.
	Identifier
	// UnquotedArgument is a bare word, possibly containing backslash escapes.
	UnquotedArgument
	// QuotedArgument is a "..." argument including its quotes.
	QuotedArgument
	// BracketArgument is a [=[...]=] argument including its delimiters.
	BracketArgument

	// LineComment is '#' up to (not including) the line break.
	LineComment
	// BracketComment is #[=[...]=].
	BracketComment

	// Space is a run of spaces and tabs.
	Space
	// Newline is a single "\n" or "\r\n".
	Newline
)

var kindNames = [...]string{
	Error:            "Error",
	EOF:              "EOF",
	LParen:           "LParen",
	RParen:           "RParen",
	Identifier:       "Identifier",
	UnquotedArgument: "UnquotedArgument",
	QuotedArgument:   "QuotedArgument",
	BracketArgument:  "BracketArgument",
	LineComment:      "LineComment",
	BracketComment:   "BracketComment",
	Space:            "Space",
	Newline:          "Newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsTrivia reports whether tokens of this kind carry no semantic content.
func (k Kind) IsTrivia() bool {
	switch k {
	case Space, Newline, LineComment, BracketComment:
		return true
	default:
		return false
	}
}

// IsComment reports whether the kind is a line or bracket comment.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BracketComment
}

// IsArgument reports whether the kind is one of the three argument forms.
func (k Kind) IsArgument() bool {
	switch k {
	case UnquotedArgument, QuotedArgument, BracketArgument:
		return true
	default:
		return false
	}
}
