// Package token defines the lexeme categories produced by the tokenizer.
// Invariants:
//   - Lexeme.Text is a slice of the source line (trailing ';' runs removed).
//   - A stripped ';' run is represented by exactly one Delimiter lexeme whose
//     Text is ";".
//   - Unknown lexemes are still emitted and counted.
package token
