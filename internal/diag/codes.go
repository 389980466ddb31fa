package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                       Code = 1000
	LexUnterminatedQuoted         Code = 1001
	LexUnterminatedBracket        Code = 1002
	LexUnterminatedBracketComment Code = 1003

	// Парсерные
	SynInfo          Code = 2000
	SynUnclosedParen Code = 2001
	SynMissingParen  Code = 2002
	SynStrayToken    Code = 2003

	// Ошибки I/O
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Конфигурация стиля
	CfgInfo       Code = 5000
	CfgUnknownKey Code = 5001
	CfgBadValue   Code = 5002
	CfgParseError Code = 5003

	// Форматирование
	FmtInfo          Code = 6000
	FmtNotIdempotent Code = 6001
	FmtNotLossless   Code = 6002
)

var codeDescription = map[Code]string{
	UnknownCode:                   "Unknown error",
	LexInfo:                       "Lexical information",
	LexUnterminatedQuoted:         "Unterminated quoted argument",
	LexUnterminatedBracket:        "Unterminated bracket argument",
	LexUnterminatedBracketComment: "Unterminated bracket comment",
	SynInfo:                       "Syntax information",
	SynUnclosedParen:              "Unclosed parenthesis",
	SynMissingParen:               "Command without argument list",
	SynStrayToken:                 "Token cannot start a command",
	IOLoadFileError:               "I/O load file error",
	IOWriteFileError:              "I/O write file error",
	CfgInfo:                       "Style configuration information",
	CfgUnknownKey:                 "Unknown style option",
	CfgBadValue:                   "Invalid style option value",
	CfgParseError:                 "Malformed style file",
	FmtInfo:                       "Formatter information",
	FmtNotIdempotent:              "Formatting is not idempotent",
	FmtNotLossless:                "Syntax tree does not reproduce the input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
