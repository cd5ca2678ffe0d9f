package pipeline

import "time"

// Stage names one analysis stage (or the load step before them).
type Stage string

const (
	StageLoad     Stage = "load"
	StageLexical  Stage = "lexical"
	StageSyntax   Stage = "syntax"
	StageSemantic Stage = "semantic"
)

// Analysis lists the analysis stages in pipeline order.
var Analysis = []Stage{StageLexical, StageSyntax, StageSemantic}

// Title is the upper-case name used in reports ("SEMANTIC").
func (s Stage) Title() string {
	switch s {
	case StageLexical:
		return "LEXICAL"
	case StageSyntax:
		return "SYNTAX"
	case StageSemantic:
		return "SEMANTIC"
	case StageLoad:
		return "LOAD"
	}
	return string(s)
}

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"  // стадия отработала, но нашла ошибки
	StatusSkipped Status = "skipped" // гейт: предыдущая стадия не прошла
	StatusError   Status = "error"   // инфраструктурная ошибка (IO и т.п.)
	StatusCached  Status = "cached"
)

// Terminal reports whether no further events follow for the file.
func (s Status) Terminal() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusError, StatusCached:
		return true
	}
	return false
}

// Event reports progress for a file. File is empty for run-level events.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must tolerate
// concurrent calls.
type ProgressSink interface {
	OnEvent(Event)
}
