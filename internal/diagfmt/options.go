package diagfmt

import (
	"fmt"

	"declcheck/internal/driver"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// ParsePathMode accepts auto|absolute|relative|basename.
func ParsePathMode(s string) (PathMode, error) {
	switch s {
	case "", "auto":
		return PathModeAuto, nil
	case "absolute":
		return PathModeAbsolute, nil
	case "relative":
		return PathModeRelative, nil
	case "basename":
		return PathModeBasename, nil
	}
	return PathModeAuto, fmt.Errorf("invalid path mode %q (expected: auto|absolute|relative|basename)", s)
}

func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "auto"
}

// ReportOpts configures the historical stage report.
type ReportOpts struct {
	Color bool
	// Extras appends token annotations and the symbol table to passing
	// stages; without it the output matches the classic report exactly.
	Extras bool
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	BaseDir   string
	ShowNotes bool
	// ShowSource prints the offending line under each diagnostic.
	ShowSource bool
}

// JSONOpts configures JSON output of results.
type JSONOpts struct {
	PathMode     PathMode
	BaseDir      string
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
	IncludeTimes bool
}

func displayPath(res *driver.Result, mode PathMode, baseDir string) string {
	if res.File == nil {
		return res.Path
	}
	return res.File.FormatPath(mode.String(), baseDir)
}
