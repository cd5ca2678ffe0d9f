package diagfmt

import (
	"io"

	"declcheck/internal/diag"
	"declcheck/internal/driver"
)

// Short writes the single-line golden format for res, newline terminated.
func Short(w io.Writer, res *driver.Result, pathMode PathMode, baseDir string, includeNotes bool) error {
	out := diag.FormatShortDiagnostics(res.Diagnostics(), displayPath(res, pathMode, baseDir), includeNotes)
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
