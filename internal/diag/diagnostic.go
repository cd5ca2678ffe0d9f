package diag

import "fmt"

// Note points at another line that explains the diagnostic.
type Note struct {
	Line uint32
	Msg  string
}

// Diagnostic is a single finding of an analysis stage.
// Line is 1-based; 0 marks a top-level finding that belongs to no line.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Line     uint32
	Message  string
	Notes    []Note
}

// TopLevel reports whether the diagnostic is not attached to a line.
func (d Diagnostic) TopLevel() bool {
	return d.Line == 0
}

// String renders the historical "Line <n>: <message>" form.
func (d Diagnostic) String() string {
	if d.TopLevel() {
		return d.Message
	}
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// New creates a diagnostic without notes.
func New(sev Severity, code Code, line uint32, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Line:     line,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, line uint32, msg string) Diagnostic {
	return New(SevError, code, line, msg)
}
