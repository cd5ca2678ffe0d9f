package diagfmt

import (
	"io"

	"github.com/sanity-io/litter"

	"declcheck/internal/ast"
	"declcheck/internal/diag"
	"declcheck/internal/driver"
	"declcheck/internal/lexer"
	"declcheck/internal/symbols"
)

type dumpStage struct {
	Stage       string
	Status      string
	Diagnostics []diag.Diagnostic
}

type dumpResult struct {
	Path       string
	Status     string
	Cached     bool
	Stages     []dumpStage
	TokenCount int
	Lines      []lexer.LineTokens
	Decls      []ast.Declaration
	Symbols    []symbols.Entry
}

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: true,
	Separator:         " ",
}

// Dump writes a litter dump of the results for debugging.
func Dump(w io.Writer, results []*driver.Result) error {
	view := make([]dumpResult, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		d := dumpResult{Path: res.Path, Status: string(res.Status()), Cached: res.Cached}
		for _, o := range res.Outcomes {
			st := dumpStage{Stage: string(o.Stage), Status: string(o.Status)}
			if o.Bag != nil {
				st.Diagnostics = o.Bag.Items()
			}
			d.Stages = append(d.Stages, st)
		}
		if res.Lexical != nil {
			d.TokenCount = res.Lexical.TokenCount
			d.Lines = res.Lexical.Lines
		}
		if res.Syntax != nil {
			d.Decls = res.Syntax.Decls
		}
		if res.Semantic != nil {
			d.Symbols = res.Semantic.Symbols
		}
		view = append(view, d)
	}
	_, err := io.WriteString(w, dumpOptions.Sdump(view)+"\n")
	return err
}
