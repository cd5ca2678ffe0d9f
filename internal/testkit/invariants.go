package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/sema"
	"declcheck/internal/token"
)

// MaxLine is the largest line number a diagnostic for src may carry.
func MaxLine(src string) uint32 {
	n, err := safecast.Conv[uint32](strings.Count(src, "\n") + 1)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n
}

// CheckDiagnostics runs the invariants every stage result must hold:
// 1) passed iff the bag is empty
// 2) line numbers (and note lines) are within the input
// 3) line-scoped diagnostics come in non-decreasing line order
// 4) top-level diagnostics come after all line-scoped ones
// 5) blank input yields exactly one top-level diagnostic
func CheckDiagnostics(src string, passed bool, bag *diag.Bag) error {
	if bag == nil {
		return fmt.Errorf("nil bag")
	}
	items := bag.Items()
	if passed != (len(items) == 0) {
		return fmt.Errorf("passed=%v with %d diagnostics", passed, len(items))
	}

	limit := MaxLine(src)
	var prev uint32
	seenTopLevel := false
	for i, d := range items {
		if d.Message == "" {
			return fmt.Errorf("diagnostic %d has an empty message", i)
		}
		if d.Line > limit {
			return fmt.Errorf("diagnostic %q: line %d beyond input (%d lines)", d.String(), d.Line, limit)
		}
		for _, n := range d.Notes {
			if n.Line == 0 || n.Line > limit {
				return fmt.Errorf("note %q of %q: bad line %d", n.Msg, d.String(), n.Line)
			}
		}
		if d.TopLevel() {
			seenTopLevel = true
			continue
		}
		if seenTopLevel {
			return fmt.Errorf("line diagnostic %q after a top-level one", d.String())
		}
		if d.Line < prev {
			return fmt.Errorf("diagnostic %q out of order (previous line %d)", d.String(), prev)
		}
		prev = d.Line
	}

	if strings.TrimSpace(src) == "" {
		if len(items) != 1 || !items[0].TopLevel() || items[0].Code != diag.IOEmptySource {
			return fmt.Errorf("blank input must give one empty-source diagnostic, got %v", bag.Messages())
		}
	}
	return nil
}

// CheckLexical adds the lexical result invariants: token count equals the
// sum of per-line lexemes, lines strictly increase and no lexeme is empty.
func CheckLexical(src string, res *lexer.Result) error {
	if err := CheckDiagnostics(src, res.Passed, res.Bag); err != nil {
		return err
	}
	total := 0
	var prev uint32
	for _, lt := range res.Lines {
		if lt.Line <= prev {
			return fmt.Errorf("token line %d not after %d", lt.Line, prev)
		}
		prev = lt.Line
		if len(lt.Lexemes) == 0 {
			return fmt.Errorf("line %d qualified but has no lexemes", lt.Line)
		}
		if lt.Lexemes[0].Category != token.DataType {
			return fmt.Errorf("line %d starts with %s", lt.Line, lt.Lexemes[0])
		}
		for _, lx := range lt.Lexemes {
			if lx.Text == "" {
				return fmt.Errorf("line %d has an empty lexeme", lt.Line)
			}
		}
		total += len(lt.Lexemes)
	}
	if total != res.TokenCount {
		return fmt.Errorf("token count %d, lexemes %d", res.TokenCount, total)
	}
	return nil
}

// CheckSemantic adds the symbol table invariants: names are unique and
// entries are recorded in declaration order.
func CheckSemantic(src string, res *sema.Result) error {
	if err := CheckDiagnostics(src, res.Passed, res.Bag); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(res.Symbols))
	var prev uint32
	for _, e := range res.Symbols {
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("symbol %q registered twice", e.Name)
		}
		seen[e.Name] = struct{}{}
		if e.Line < prev {
			return fmt.Errorf("symbol %q out of order", e.Name)
		}
		prev = e.Line
		if !e.Type.Valid() {
			return fmt.Errorf("symbol %q has invalid type", e.Name)
		}
	}
	return nil
}
