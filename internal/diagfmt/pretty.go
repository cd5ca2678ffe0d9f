package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"declcheck/internal/diag"
	"declcheck/internal/driver"
)

// Pretty форматирует диагностики в человекочитаемый вид:
// <path>:<line>: <SEV> <CODE>: <Message>
// затем строку исходника и Notes в том же формате.
// Диагностики верхнего уровня печатаются без номера строки.
func Pretty(w io.Writer, res *driver.Result, opts PrettyOpts) error {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{sevColor[diag.SevError], sevColor[diag.SevWarning], sevColor[diag.SevInfo], dim} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	path := displayPath(res, opts.PathMode, opts.BaseDir)
	var b strings.Builder
	for _, d := range res.Diagnostics() {
		b.WriteString(location(path, d.Line))
		b.WriteString(": ")
		b.WriteString(sevColor[d.Severity].Sprint(d.Severity.String()))
		fmt.Fprintf(&b, " %s: %s\n", d.Code.ID(), d.Message)

		if opts.ShowSource && d.Line > 0 && res.File != nil {
			if text := res.File.GetLine(d.Line); text != "" {
				fmt.Fprintf(&b, "%s %s\n", dim.Sprintf("%5d |", d.Line), strings.TrimRight(text, "\r"))
			}
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(&b, "  %s: %s\n", dim.Sprint("note "+location(path, n.Line)), n.Msg)
			}
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func location(path string, line uint32) string {
	if line == 0 {
		return path
	}
	return fmt.Sprintf("%s:%d", path, line)
}
