// Package cst holds the lossless concrete syntax tree of a CMake script.
//
// A File node owns the top-level items in source order: command invocations
// and the trivia between them. A CommandInvocation owns its Identifier, the
// trivia before '(', every paren (nested groups included, flattened into the
// same child list) and every argument and trivia token inside.
//
// Concatenating the text of all leaves reproduces the input byte for byte.
// Nodes own their children exclusively and hold no parent pointers.
package cst
