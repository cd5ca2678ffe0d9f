package driver

import (
	"time"

	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/observ"
	"declcheck/internal/parser"
	"declcheck/internal/pipeline"
	"declcheck/internal/project"
	"declcheck/internal/sema"
	"declcheck/internal/source"
)

// StageOutcome is what one stage did for one file.
type StageOutcome struct {
	Stage   pipeline.Stage
	Status  pipeline.Status
	Bag     *diag.Bag
	Elapsed time.Duration
}

// Passed reports whether the stage ran without findings.
func (o StageOutcome) Passed() bool { return o.Status == pipeline.StatusPassed }

// Result is the outcome of checking one file. Stage results are nil for
// stages that did not run.
type Result struct {
	Path     string
	FileID   source.FileID
	File     *source.File // nil after a load failure
	Hash     project.Digest
	Outcomes []StageOutcome
	Lexical  *lexer.Result
	Syntax   *parser.Result
	Semantic *sema.Result
	Cached   bool
	Timing   *observ.Report
}

// Passed is true when no stage failed and the file loaded.
func (r *Result) Passed() bool {
	if r == nil {
		return false
	}
	for _, o := range r.Outcomes {
		if o.Status == pipeline.StatusFailed || o.Status == pipeline.StatusError {
			return false
		}
	}
	return true
}

// Outcome returns the record for stage.
func (r *Result) Outcome(stage pipeline.Stage) (StageOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Stage == stage {
			return o, true
		}
	}
	return StageOutcome{}, false
}

// FailedStage is the first stage that failed or errored, or "".
func (r *Result) FailedStage() pipeline.Stage {
	for _, o := range r.Outcomes {
		if o.Status == pipeline.StatusFailed || o.Status == pipeline.StatusError {
			return o.Stage
		}
	}
	return ""
}

// Status summarises the file: cached, error, failed or passed.
func (r *Result) Status() pipeline.Status {
	switch {
	case r.Cached:
		return pipeline.StatusCached
	case r.hasStatus(pipeline.StatusError):
		return pipeline.StatusError
	case !r.Passed():
		return pipeline.StatusFailed
	}
	return pipeline.StatusPassed
}

func (r *Result) hasStatus(st pipeline.Status) bool {
	for _, o := range r.Outcomes {
		if o.Status == st {
			return true
		}
	}
	return false
}

// Diagnostics concatenates stage diagnostics in pipeline order.
func (r *Result) Diagnostics() []diag.Diagnostic {
	all := diag.NewBag(0)
	for _, o := range r.Outcomes {
		all.Merge(o.Bag)
	}
	return all.Items()
}

func (r *Result) lastStage() pipeline.Stage {
	for i := len(r.Outcomes) - 1; i >= 0; i-- {
		if r.Outcomes[i].Status != pipeline.StatusSkipped {
			return r.Outcomes[i].Stage
		}
	}
	return pipeline.StageLoad
}
