// Package trace records what the checker is doing while it runs.
//
// Events are emitted as span begin/end pairs or instant points and go to a
// stream (file or stderr), to an in-memory ring that is dumped on a crash,
// or to both.
//
// # Usage
//
//	declcheck check --trace=- --trace-level=detail ./snippets
//
// # Scopes
//
//   - ScopeRun: one CLI invocation
//   - ScopeStage: lexical / syntax / semantic stage boundaries
//   - ScopeFile: one snippet in directory mode
//   - ScopeLine: per-line events (debug only)
//
// # Levels
//
// off < error < phase < detail < debug. Level phase shows run and stage
// spans, detail adds files, debug adds lines. Level error records nothing
// while running and only exists so the crash path can dump the ring.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "syntax", parent)
//	defer span.End("")
package trace
