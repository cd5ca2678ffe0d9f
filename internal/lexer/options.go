package lexer

import (
	"fmt"
	"strings"

	"declcheck/internal/diag"
	"declcheck/internal/source"
)

// Policy decides how strictly a stage treats lines that are not declarations.
type Policy uint8

const (
	// PolicyStrict: every stage reports non-declaration lines and requires at
	// least one declaration.
	PolicyStrict Policy = iota
	// PolicyLegacy: the semantic stage silently skips non-declaration lines.
	PolicyLegacy
)

func (p Policy) String() string {
	switch p {
	case PolicyLegacy:
		return "legacy"
	default:
		return "strict"
	}
}

// ParsePolicy accepts "strict", "legacy" or "" (strict).
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "legacy":
		return PolicyLegacy, nil
	}
	return PolicyStrict, fmt.Errorf("unknown policy %q (want strict or legacy)", s)
}

// Options are shared by all three analyzers.
type Options struct {
	Policy Policy
	// KeepComments отключает удаление комментариев перед анализом.
	KeepComments bool
	// MaxDiagnostics ограничивает Bag; 0: без ограничения.
	MaxDiagnostics int
}

// Input is a snippet ready for a stage: comments removed, split into lines.
type Input struct {
	Lines []source.Line
	// Empty is set for empty or whitespace-only snippets.
	Empty bool
}

// Prepare strips comments (unless disabled) and splits src into numbered lines.
func Prepare(src string, opts Options) Input {
	if source.IsBlank(src) {
		return Input{Empty: true}
	}
	if !opts.KeepComments {
		src = StripComments(src)
	}
	return Input{Lines: source.SplitLines(src)}
}

// ReportEmptySource emits the single top-level diagnostic for blank input.
func ReportEmptySource(r diag.Reporter) {
	diag.ReportError(r, diag.IOEmptySource, 0, "No source code provided").Emit()
}

// FirstField returns the first whitespace-separated word of s. Whitespace
// here is the tokenizer's \s class, so the word matches the first raw token.
func FirstField(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t\n\f\r"); i >= 0 {
		return s[:i]
	}
	return s
}
