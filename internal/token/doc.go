// Package token defines lexical token kinds for CMake scripts.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace, line breaks and comments are ordinary tokens; nothing is dropped,
//     so concatenating Text of every token reproduces the input.
//   - The lexer never emits Identifier: the parser promotes the first
//     UnquotedArgument of a command invocation.
package token
