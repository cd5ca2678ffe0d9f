package lexer

import (
	"strings"

	"declcheck/internal/diag"
	"declcheck/internal/token"
	"declcheck/internal/types"
)

// LineTokens is the tokenizer output for one qualifying line.
type LineTokens struct {
	Line    uint32
	Lexemes []token.Lexeme
}

// Annotation renders the lexemes as shown in the lexical report.
func (lt LineTokens) Annotation() string {
	return token.Annotate(lt.Lexemes)
}

// Result of the lexical stage.
type Result struct {
	Passed     bool
	Bag        *diag.Bag
	TokenCount int
	Lines      []LineTokens
}

// Analyze runs the lexical stage: every non-blank line must look like a
// declaration (its first word is a primitive type and it contains ';' or
// '='). Qualifying lines are tokenized.
func Analyze(src string, opts Options) *Result {
	res := &Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	r := diag.BagReporter{Bag: res.Bag}

	in := Prepare(src, opts)
	if in.Empty {
		ReportEmptySource(r)
		return res
	}

	found := false
	for _, line := range in.Lines {
		if line.Blank() {
			continue
		}
		if !IsDeclarationCandidate(line.Text) {
			diag.ReportError(r, diag.LexNotDeclaration, line.Num,
				"Only variable declarations are allowed. Found: "+line.Text).Emit()
			continue
		}
		found = true
		lexemes := Tokenize(line.Text)
		res.TokenCount += len(lexemes)
		res.Lines = append(res.Lines, LineTokens{Line: line.Num, Lexemes: lexemes})
	}
	if !found {
		diag.ReportError(r, diag.LexNoDeclarations, 0, "No variable declarations found").Emit()
	}

	res.Passed = !res.Bag.HasErrors()
	return res
}

// IsDeclarationCandidate reports whether a trimmed line qualifies for
// tokenization.
func IsDeclarationCandidate(line string) bool {
	if !types.IsPrimitive(FirstField(line)) {
		return false
	}
	return strings.ContainsAny(line, ";=")
}
