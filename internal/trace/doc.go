// Package trace records what the formatter driver is doing and how long it
// takes.
//
// Enable it from the command line:
//
//	cmakefmt fmt --trace=- --trace-level=detail src/
//
// # Tracers
//
//   - Nop: disabled tracing, zero overhead
//   - StreamTracer: writes every event to a file or stderr (text or NDJSON)
//   - RingTracer: keeps the last N events in memory and dumps them on failure
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// Events carry a scope: ScopeDriver for whole commands, ScopeFile for one
// input file and ScopePass for lex, parse and format passes inside a file.
// LevelPhase emits driver spans only, LevelDetail adds files, LevelDebug
// adds passes and point events.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, parentID)
//	defer span.End("")
package trace
