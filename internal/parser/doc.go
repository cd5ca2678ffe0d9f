// Package parser implements the syntax stage: a strict, per-line grammar
// check of "<type> <name> [= <init>];" declarations. It runs independently of
// the lexical stage and short-circuits per line on the first failed check.
package parser
