package sema

import (
	"fmt"
	"regexp"
	"strings"

	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/symbols"
	"declcheck/internal/token"
	"declcheck/internal/types"
)

// declRe matches the relaxed declaration grammar:
// [modifiers] <primitive>[[]...] <declarators>;
var declRe = regexp.MustCompile(
	`^\s*(?:(?:public|private|protected|static|final|transient|volatile)\s+)*` +
		`(` + strings.Join(types.Names(), "|") + `)(?:\s*\[\s*\])*\s+(.+);\s*$`)

var bracketsRe = regexp.MustCompile(`\[\s*\]`)

// Result of the semantic stage.
type Result struct {
	Passed  bool
	Bag     *diag.Bag
	Symbols []symbols.Entry
}

// Analyze checks declarations against each other: names, duplicates,
// references and initializer types. The symbol table is filled top to bottom.
func Analyze(src string, opts lexer.Options) *Result {
	res := &Result{Bag: diag.NewBag(opts.MaxDiagnostics)}
	r := diag.BagReporter{Bag: res.Bag}

	in := lexer.Prepare(src, opts)
	if in.Empty {
		lexer.ReportEmptySource(r)
		return res
	}

	c := checker{rep: r, tbl: symbols.NewTable()}
	found := false
	for _, line := range in.Lines {
		if line.Blank() {
			continue
		}
		m := declRe.FindStringSubmatch(line.Text)
		if m == nil {
			if opts.Policy == lexer.PolicyStrict {
				diag.ReportError(r, diag.SemaNotDeclaration, line.Num,
					"Only variable declarations are allowed. Found: "+line.Text).Emit()
			}
			continue
		}
		found = true
		typ, _ := types.Lookup(m[1])
		c.declarationLine(typ, m[2], line.Num)
	}
	if !found && opts.Policy == lexer.PolicyStrict {
		diag.ReportError(r, diag.SemaNoDeclarations, 0, "No variable declarations found").Emit()
	}

	res.Symbols = c.tbl.Entries()
	res.Passed = !res.Bag.HasErrors()
	return res
}

type checker struct {
	rep diag.Reporter
	tbl *symbols.Table
}

func (c *checker) errorf(code diag.Code, line uint32, format string, args ...any) *diag.ReportBuilder {
	return diag.ReportError(c.rep, code, line, fmt.Sprintf(format, args...))
}

// declarationLine handles every declarator of one line.
func (c *checker) declarationLine(typ types.Primitive, list string, line uint32) {
	for _, part := range splitTopLevel(list, ',') {
		c.declarator(typ, strings.TrimSpace(part), line)
	}
}

func (c *checker) declarator(typ types.Primitive, part string, line uint32) {
	if part == "" {
		c.errorf(diag.SemaEmptyPart, line, "Empty declaration part").Emit()
		return
	}

	name, init, hasInit := part, "", false
	if eq := indexTopLevel(part, '='); eq >= 0 {
		name, init, hasInit = part[:eq], strings.TrimSpace(part[eq+1:]), true
	}
	name = strings.TrimSpace(bracketsRe.ReplaceAllString(name, ""))

	if !token.IsIdentifier(name) {
		c.errorf(diag.SemaInvalidName, line, "Invalid variable name '%s'", name).Emit()
		return
	}
	if prev, ok := c.tbl.Lookup(name); ok {
		c.errorf(diag.SemaDuplicate, line, "Variable '%s' already declared", name).
			WithNote(prev.Line, fmt.Sprintf("'%s' first declared here as %s", name, prev.Type)).
			Emit()
		return
	}

	if hasInit {
		init = strings.TrimSpace(strings.TrimSuffix(init, ";"))
	}
	if init != "" {
		if te := checkInitializer(typ, init, name, c.tbl); te != nil {
			b := c.errorf(te.code, line, "%s", te.msg)
			if te.ref != 0 {
				b.WithNote(te.ref, "referenced variable declared here")
			}
			b.Emit()
			return
		}
	}

	c.tbl.Declare(name, typ, line)
}
