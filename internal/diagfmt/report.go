package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"declcheck/internal/driver"
	"declcheck/internal/pipeline"
)

type palette struct {
	pass, fail, skip, head *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		skip: color.New(color.FgYellow),
		head: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.pass, p.fail, p.skip, p.head} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Report writes the classic per-stage report for every stage of res:
//
//	SYNTAX ANALYSIS FAILED
//
//	Errors:
//	Line 2: Variable declaration must end with semicolon
func Report(w io.Writer, res *driver.Result, opts ReportOpts) error {
	var b strings.Builder
	for i, o := range res.Outcomes {
		// блоки разделяются ровно одной пустой строкой
		if i > 0 && !strings.HasSuffix(b.String(), "\n\n") {
			b.WriteByte('\n')
		}
		writeStage(&b, res, o, opts)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// StageReport writes the report for a single stage.
func StageReport(w io.Writer, res *driver.Result, stage pipeline.Stage, opts ReportOpts) error {
	o, ok := res.Outcome(stage)
	if !ok {
		return fmt.Errorf("stage %s did not run", stage)
	}
	var b strings.Builder
	writeStage(&b, res, o, opts)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeStage(b *strings.Builder, res *driver.Result, o driver.StageOutcome, opts ReportOpts) {
	p := newPalette(opts.Color)
	title := o.Stage.Title()
	if o.Stage != pipeline.StageLoad {
		title += " ANALYSIS"
	}
	switch o.Status {
	case pipeline.StatusSkipped:
		b.WriteString(p.skip.Sprint(title + " SKIPPED"))
		b.WriteString(" (previous stage failed)\n")
		return
	case pipeline.StatusPassed:
		b.WriteString(p.pass.Sprint(title + " PASSED"))
		b.WriteByte('\n')
		// исторически семантический отчёт без пустой строки
		if o.Stage != pipeline.StageSemantic {
			b.WriteByte('\n')
		}
		if opts.Extras {
			writeExtras(b, res, o.Stage, p)
		}
		return
	}
	b.WriteString(p.fail.Sprint(title + " FAILED"))
	b.WriteString("\n\n")
	b.WriteString(p.head.Sprint("Errors:"))
	b.WriteByte('\n')
	if o.Bag == nil {
		return
	}
	for _, d := range o.Bag.Items() {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
}

func writeExtras(b *strings.Builder, res *driver.Result, stage pipeline.Stage, p palette) {
	switch stage {
	case pipeline.StageLexical:
		if res.Lexical == nil {
			return
		}
		for _, lt := range res.Lexical.Lines {
			fmt.Fprintf(b, "Line %d: %s\n", lt.Line, lt.Annotation())
		}
		fmt.Fprintf(b, "%s %d\n", p.head.Sprint("Total tokens:"), res.Lexical.TokenCount)
	case pipeline.StageSyntax:
		if res.Syntax == nil {
			return
		}
		fmt.Fprintf(b, "%s %d\n", p.head.Sprint("Declarations:"), len(res.Syntax.Decls))
	case pipeline.StageSemantic:
		if res.Semantic == nil || len(res.Semantic.Symbols) == 0 {
			return
		}
		b.WriteString(p.head.Sprint("Symbol table:"))
		b.WriteByte('\n')
		for _, e := range res.Semantic.Symbols {
			fmt.Fprintf(b, "  %s: %s (line %d)\n", e.Name, e.Type, e.Line)
		}
	}
}
