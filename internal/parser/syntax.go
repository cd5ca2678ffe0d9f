package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"declcheck/internal/ast"
	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/source"
	"declcheck/internal/token"
	"declcheck/internal/types"
)

// typeRe: идентификатор с необязательным суффиксом <...>
var typeRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(<[^>]*>)?$`)

// Result of the syntax stage.
type Result struct {
	Passed bool
	Bag    *diag.Bag
	Decls  []ast.Declaration
}

// Analyze validates every non-blank line as a declaration.
func Analyze(src string, opts lexer.Options) *Result {
	res := &Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	r := diag.BagReporter{Bag: res.Bag}

	in := lexer.Prepare(src, opts)
	if in.Empty {
		lexer.ReportEmptySource(r)
		return res
	}

	for _, line := range in.Lines {
		if line.Blank() {
			continue
		}
		if d, ok := parseLine(r, line); ok {
			res.Decls = append(res.Decls, d)
		}
	}
	if len(res.Decls) == 0 {
		diag.ReportError(r, diag.SynNoDeclarations, 0, "No variable declarations found").Emit()
	}

	res.Passed = !res.Bag.HasErrors()
	return res
}

// ParseLine validates a single trimmed line. On failure the returned error
// carries the diagnostic message.
func ParseLine(text string) (ast.Declaration, error) {
	var first *diag.Diagnostic
	rep := reporterFunc(func(code diag.Code, sev diag.Severity, line uint32, msg string, notes []diag.Note) {
		if first == nil {
			d := diag.New(sev, code, line, msg)
			first = &d
		}
	})
	d, ok := parseLine(rep, source.Line{Num: 1, Raw: text, Text: strings.TrimSpace(text)})
	if !ok {
		return ast.Declaration{}, errors.New(first.Message)
	}
	return d, nil
}

type reporterFunc func(code diag.Code, sev diag.Severity, line uint32, msg string, notes []diag.Note)

func (f reporterFunc) Report(code diag.Code, sev diag.Severity, line uint32, msg string, notes []diag.Note) {
	f(code, sev, line, msg, notes)
}

func parseLine(r diag.Reporter, line source.Line) (ast.Declaration, bool) {
	fail := func(code diag.Code, msg string) (ast.Declaration, bool) {
		diag.ReportError(r, code, line.Num, msg).Emit()
		return ast.Declaration{}, false
	}

	text := line.Text
	// 1. терминатор
	if !strings.HasSuffix(text, ";") {
		return fail(diag.SynExpectSemicolon, "Variable declaration must end with semicolon")
	}
	body := strings.TrimSpace(strings.TrimSuffix(text, ";"))

	// 2. '==' вместо '='
	if strings.Contains(body, "==") {
		return fail(diag.SynDoubleEquals, "Invalid operator '==' used instead of '='")
	}

	// 3. декларатор и инициализатор
	declPart, init, hasInit := strings.Cut(body, "=")
	declPart = strings.TrimSpace(declPart)
	init = strings.TrimSpace(init)
	if hasInit && init == "" {
		return fail(diag.SynEmptyInitializer, "Assignment value cannot be empty")
	}

	// 4. ровно два слова: тип и имя
	fields := strings.Fields(declPart)
	switch {
	case len(fields) < 2:
		return fail(diag.SynMissingTypeOrName, "Missing type or variable name")
	case len(fields) > 2:
		return fail(diag.SynTooManyTokens, fmt.Sprintf("Too many tokens in declaration part '%s'", declPart))
	}
	typ, name := fields[0], fields[1]

	// 5. имя
	if !token.IsIdentifier(name) {
		return fail(diag.SynInvalidName, fmt.Sprintf("Invalid variable name '%s'", name))
	}

	// 6. тип
	if !IsValidType(typ) {
		return fail(diag.SynInvalidType, fmt.Sprintf("Invalid or missing type '%s'", typ))
	}

	return ast.Declaration{
		Type:    typ,
		Name:    name,
		Init:    init,
		HasInit: hasInit,
		Line:    line.Num,
	}, true
}

// IsValidType accepts a primitive, a primitive with a "<…>" suffix, or a
// custom identifier with an optional "<…>" suffix.
func IsValidType(typ string) bool {
	if types.IsPrimitive(typ) {
		return true
	}
	for _, name := range types.Names() {
		if strings.HasPrefix(typ, name+"<") {
			return true
		}
	}
	return typeRe.MatchString(typ)
}
