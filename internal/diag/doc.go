// Package diag defines the diagnostic model shared by the three analysis stages.
//
// # Purpose
//
//   - Provide deterministic, serialisable records of what the lexical, syntax
//     and semantic stages found in a snippet.
//   - Offer light-weight utilities (Reporter, Bag) so analyzers emit findings
//     without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not format for humans or perform IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (analyzers only emit Error).
//   - Code – numeric identifier with a stable string form (LEX1001, SYN2001…).
//   - Line – 1-based physical line of the input; 0 for top-level findings such
//     as "No variable declarations found".
//   - Message – the exact user-facing text.
//   - Notes – optional pointers to other lines, e.g. the first declaration of a
//     duplicated variable.
//
// Diagnostic.String keeps the historical "Line <n>: <message>" rendering.
//
// # Collections
//
// Bag keeps diagnostics in emission order, optionally capped. Sort puts line
// findings first in line order and top-level findings last; findings on the
// same line keep their order, so a repeated duplicate is reported each time.
// Merge appends another bag and lifts the cap when needed.
package diag
