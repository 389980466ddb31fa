package token

// BlockRole describes how a command name affects indentation.
type BlockRole uint8

const (
	// BlockNone leaves the indentation level untouched.
	BlockNone BlockRole = iota
	// BlockOpen increments the level after the command is printed.
	BlockOpen
	// BlockClose decrements the level before the command is printed.
	BlockClose
	// BlockMiddle prints one level out without changing the level (else, elseif).
	BlockMiddle
)

var blockRoles = map[string]BlockRole{
	"if":          BlockOpen,
	"while":       BlockOpen,
	"foreach":     BlockOpen,
	"function":    BlockOpen,
	"macro":       BlockOpen,
	"block":       BlockOpen,
	"endif":       BlockClose,
	"endwhile":    BlockClose,
	"endforeach":  BlockClose,
	"endfunction": BlockClose,
	"endmacro":    BlockClose,
	"endblock":    BlockClose,
	"else":        BlockMiddle,
	"elseif":      BlockMiddle,
}

// LookupBlock returns the block role of a command name. Matching ignores case.
func LookupBlock(name string) BlockRole {
	if len(name) > len("endfunction") {
		return BlockNone
	}
	lower, ok := foldASCII(name, 'A', 'Z', 'a'-'A')
	if !ok {
		return BlockNone
	}
	return blockRoles[lower]
}

// argumentKeywords is the fixed vocabulary used to force line breaks before
// keyword arguments. Keys are upper case.
var argumentKeywords = map[string]struct{}{}

func init() {
	for _, kw := range []string{
		"PROPERTIES", "PROPERTY", "TARGET", "TARGETS", "DESTINATION", "COMMAND",
		"DEPENDS", "WORKING_DIRECTORY", "COMMENT", "SOURCES", "PUBLIC", "PRIVATE",
		"INTERFACE", "FILES", "PROGRAMS", "INCLUDES", "EXPORT", "ALIAS", "STRINGS",
		"DEFINED", "COMPONENTS", "OPTIONAL", "REQUIRED", "APPEND", "ENV", "HINTS",
		"PATHS", "DOC", "VERSION", "LIBRARY", "RUNTIME", "ARCHIVE", "FRAMEWORK",
		"BUNDLE", "NAMELINK_ONLY", "NAMELINK_SKIP", "PERMISSIONS", "CONFIGURATIONS",
		"COMPONENT", "MATCHES", "EXISTS", "TEST", "POLICY", "CACHE", "FORCE",
		"FILEPATH", "PATH", "STRING", "INTERNAL", "BOOL", "MAIN_DEPENDENCY",
		"IMPLICIT_DEPENDS", "DEPFILE", "JOB_POOL", "VERBATIM", "COMMAND_EXPAND_LISTS",
		"APPEND_STRING", "GLOBAL", "DIRECTORY", "SOURCE", "INSTALL", "BRIEF_DOCS",
		"FULL_DOCS", "VARS", "ARGS", "PULL", "PUSH", "MACROS", "NAMES", "LANGUAGES",
		"CONFIGS",
	} {
		argumentKeywords[kw] = struct{}{}
	}
}

// IsArgumentKeyword reports whether text is one of the known CMake keyword
// arguments (PUBLIC, DESTINATION, COMMAND, ...). Matching ignores case.
func IsArgumentKeyword(text string) bool {
	if len(text) == 0 || len(text) > len("COMMAND_EXPAND_LISTS") {
		return false
	}
	upper, ok := foldASCII(text, 'a', 'z', 'A'-'a')
	if !ok {
		return false
	}
	_, ok = argumentKeywords[upper]
	return ok
}

// foldASCII shifts the letters in [lo, hi] by delta. Keywords are pure ASCII,
// so any non-ASCII byte reports ok=false instead of going through Unicode
// case mapping (which folds 'ſ' to 'S' and 'K' to 'k').
func foldASCII(s string, lo, hi byte, delta int) (string, bool) {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 0x80:
			return "", false
		case c >= lo && c <= hi:
			b[i] = byte(int(c) + delta)
		}
	}
	return string(b), true
}

// IsPositional is the cheap positional-argument test: an argument counts as
// positional when it contains at least one lower case ASCII letter, or is empty.
// It is deliberately unrelated to IsArgumentKeyword.
func IsPositional(text string) bool {
	if text == "" {
		return true
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= 'a' && text[i] <= 'z' {
			return true
		}
	}
	return false
}
