package driver

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"declcheck/internal/lexer"
	"declcheck/internal/observ"
	"declcheck/internal/pipeline"
	"declcheck/internal/project"
)

// StageSet is a bit set of analysis stages.
type StageSet uint8

const (
	StageLexical StageSet = 1 << iota
	StageSyntax
	StageSemantic

	AllStages = StageLexical | StageSyntax | StageSemantic
)

var stageBits = map[pipeline.Stage]StageSet{
	pipeline.StageLexical:  StageLexical,
	pipeline.StageSyntax:   StageSyntax,
	pipeline.StageSemantic: StageSemantic,
}

// ParseStages parses a comma separated list such as "lexical,syntax" or
// "all". Empty input selects every stage.
func ParseStages(s string) (StageSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllStages, nil
	}
	var set StageSet
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "all" {
			set |= AllStages
			continue
		}
		bit, ok := stageBits[pipeline.Stage(part)]
		if !ok {
			return 0, fmt.Errorf("unknown stage %q (want lexical|syntax|semantic|all)", part)
		}
		set |= bit
	}
	return set, nil
}

// Has reports whether stage is selected.
func (s StageSet) Has(stage pipeline.Stage) bool {
	return s&stageBits[stage] != 0
}

// Stages returns the selected stages in pipeline order.
func (s StageSet) Stages() []pipeline.Stage {
	out := make([]pipeline.Stage, 0, len(pipeline.Analysis))
	for _, st := range pipeline.Analysis {
		if s.Has(st) {
			out = append(out, st)
		}
	}
	return out
}

func (s StageSet) String() string {
	if s&AllStages == AllStages {
		return "all"
	}
	names := make([]string, 0, 3)
	for _, st := range s.Stages() {
		names = append(names, string(st))
	}
	return strings.Join(names, ",")
}

// Options controls a check run.
type Options struct {
	Analysis lexer.Options
	// Stages selects which analyzers run; zero means all.
	Stages StageSet
	// NoGate runs every selected stage even after a failure.
	NoGate bool
	// Jobs limits directory parallelism; <= 0 uses GOMAXPROCS.
	Jobs int
	// Extensions filters directory walks; empty means DefaultExtensions.
	Extensions []string
	Cache      *DiskCache
	Progress   pipeline.ProgressSink
	// Timer, when set, receives one phase per stage and file.
	Timer *observ.Timer
}

// DefaultExtensions are walked by CheckDir when Options.Extensions is empty.
var DefaultExtensions = []string{".java", ".decl"}

func (o Options) stages() StageSet {
	if o.Stages == 0 {
		return AllStages
	}
	return o.Stages
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions
	}
	return o.Extensions
}

func (o Options) matches(path string) bool {
	return slices.ContainsFunc(o.extensions(), func(ext string) bool {
		return strings.HasSuffix(path, ext)
	})
}

// fingerprint covers every option that changes analysis output.
func (o Options) fingerprint() project.Digest {
	return project.Sum(
		o.Analysis.Policy.String(),
		strconv.FormatBool(o.Analysis.KeepComments),
		strconv.Itoa(o.Analysis.MaxDiagnostics),
		o.stages().String(),
		strconv.FormatBool(o.NoGate),
	)
}
