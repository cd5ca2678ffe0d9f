package diag

import (
	"fmt"
	"path/filepath"
	"strings"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation: "<sev> <CODE> <path>:<line> <message>". Notes follow their
// diagnostic when includeNotes is set. The result is empty when diags is empty.
func FormatShortDiagnostics(diags []Diagnostic, path string, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	path = normalizePath(path)

	// заметки остаются сразу под своей диагностикой, поэтому сортируем до развёртки
	ordered := NewBag(0)
	ordered.Merge(&Bag{items: diags})
	ordered.Sort()

	rendered := make([]goldenDiagnostic, 0, len(diags))
	items := ordered.Items()
	for i := range items {
		rendered = appendDiagnostic(rendered, &items[i], path, includeNotes)
	}

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []goldenDiagnostic, d *Diagnostic, path string, includeNotes bool) []goldenDiagnostic {
	out = append(out, goldenDiagnostic{
		Severity: severityLabel(d.Severity),
		Code:     d.Code.ID(),
		Path:     path,
		Line:     d.Line,
		Message:  sanitizeMessage(d.Message),
	})
	if !includeNotes {
		return out
	}
	for _, n := range d.Notes {
		out = append(out, goldenDiagnostic{
			Severity: "note",
			Code:     d.Code.ID(),
			Path:     path,
			Line:     n.Line,
			Message:  sanitizeMessage(n.Msg),
		})
	}
	return out
}

func normalizePath(path string) string {
	if path == "" {
		return "<input>"
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func severityLabel(sev Severity) string {
	switch sev {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	default:
		return "info"
	}
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
