// Package format renders a CMake syntax tree under a style policy.
//
// The printer walks the tree once. Block commands (if, foreach, function, ...)
// drive the indentation level, line breaks from the source are kept inside
// argument lists, and the Options decide extra breaks, paren spacing,
// continuation alignment and option(...) column alignment.
//
// Format is total: every tree the parser can build is printed, malformed parts
// verbatim. All state lives in one printer value per call.
package format
