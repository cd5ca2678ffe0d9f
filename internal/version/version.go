package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the declcheck CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Info is the build fingerprint.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

// Current returns the trimmed build variables; an empty version reads "dev".
func Current() Info {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	return Info{
		Version:   v,
		GitCommit: strings.TrimSpace(GitCommit),
		BuildDate: strings.TrimSpace(BuildDate),
	}
}

// Colored renders "major.minor.patch[-suffix]" with one colour per
// component. Versions that are not dotted triples are returned as is.
func Colored(v string) string {
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return v
	}
	out := fmt.Sprintf("%s.%s.%s",
		versionMajorColor.Sprint(parts[0]),
		versionMinorColor.Sprint(parts[1]),
		versionPatchColor.Sprint(parts[2]))
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
