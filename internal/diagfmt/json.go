package diagfmt

import (
	"encoding/json"
	"io"

	"declcheck/internal/diag"
	"declcheck/internal/driver"
	"declcheck/internal/observ"
)

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Line    uint32 `json:"line,omitempty"`
	Message string `json:"message"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Class    string     `json:"class,omitempty"`
	Line     uint32     `json:"line,omitempty"`
	Message  string     `json:"message"`
	Text     string     `json:"text"` // "Line n: message"
	Notes    []NoteJSON `json:"notes,omitempty"`
}

// StageJSON is one stage outcome.
type StageJSON struct {
	Stage       string           `json:"stage"`
	Status      string           `json:"status"`
	Passed      bool             `json:"passed"`
	Diagnostics []DiagnosticJSON `json:"diagnostics,omitempty"`
}

// SymbolJSON is one symbol table entry.
type SymbolJSON struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Line uint32 `json:"line"`
}

// FileJSON is the result for one file.
type FileJSON struct {
	Path       string          `json:"path"`
	Status     string          `json:"status"`
	Passed     bool            `json:"passed"`
	Cached     bool            `json:"cached,omitempty"`
	Stages     []StageJSON     `json:"stages"`
	TokenCount int             `json:"token_count,omitempty"`
	Tokens     []TokenLineJSON `json:"tokens,omitempty"`
	Symbols    []SymbolJSON    `json:"symbols,omitempty"`
	Timing     *observ.Report  `json:"timing,omitempty"`
}

// Output представляет корневую структуру JSON вывода
type Output struct {
	Files   []FileJSON  `json:"files"`
	Summary SummaryJSON `json:"summary"`
}

// SummaryJSON mirrors driver.Summary.
type SummaryJSON struct {
	Files  int  `json:"files"`
	Passed int  `json:"passed"`
	Failed int  `json:"failed"`
	Errors int  `json:"errors"`
	Cached int  `json:"cached"`
	OK     bool `json:"ok"`
}

// BuildOutput формирует структуру JSON-вывода без сериализации.
func BuildOutput(results []*driver.Result, opts JSONOpts) Output {
	out := Output{Files: make([]FileJSON, 0, len(results))}
	for _, res := range results {
		if res == nil {
			continue
		}
		out.Files = append(out.Files, buildFile(res, opts))
	}
	sum := driver.Summarize(results)
	out.Summary = SummaryJSON{
		Files:  sum.Files,
		Passed: sum.Passed,
		Failed: sum.Failed,
		Errors: sum.Errors,
		Cached: sum.Cached,
		OK:     sum.OK(),
	}
	return out
}

func buildFile(res *driver.Result, opts JSONOpts) FileJSON {
	f := FileJSON{
		Path:   displayPath(res, opts.PathMode, opts.BaseDir),
		Status: string(res.Status()),
		Passed: res.Passed(),
		Cached: res.Cached,
		Stages: make([]StageJSON, 0, len(res.Outcomes)),
	}
	for _, o := range res.Outcomes {
		st := StageJSON{Stage: string(o.Stage), Status: string(o.Status), Passed: o.Passed()}
		if o.Bag != nil {
			items := o.Bag.Items()
			if opts.Max > 0 && opts.Max < len(items) {
				items = items[:opts.Max]
			}
			for _, d := range items {
				st.Diagnostics = append(st.Diagnostics, diagnosticJSON(d, opts.IncludeNotes))
			}
		}
		f.Stages = append(f.Stages, st)
	}
	if res.Lexical != nil {
		f.TokenCount = res.Lexical.TokenCount
		f.Tokens = tokenLines(res.Lexical.Lines)
	}
	if res.Semantic != nil {
		for _, e := range res.Semantic.Symbols {
			f.Symbols = append(f.Symbols, SymbolJSON{Name: e.Name, Type: e.Type.String(), Line: e.Line})
		}
	}
	if opts.IncludeTimes {
		f.Timing = res.Timing
	}
	return f
}

func diagnosticJSON(d diag.Diagnostic, includeNotes bool) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Line:     d.Line,
		Message:  d.Message,
		Text:     d.String(),
	}
	if cls := d.Code.Class(); cls != diag.ClassNone {
		out.Class = cls.String()
	}
	if includeNotes && len(d.Notes) > 0 {
		out.Notes = make([]NoteJSON, len(d.Notes))
		for i, n := range d.Notes {
			out.Notes[i] = NoteJSON{Line: n.Line, Message: n.Msg}
		}
	}
	return out
}

// JSON форматирует результаты в JSON.
func JSON(w io.Writer, results []*driver.Result, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildOutput(results, opts))
}
