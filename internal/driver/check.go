package driver

import (
	"context"
	"strconv"
	"time"

	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/observ"
	"declcheck/internal/parser"
	"declcheck/internal/pipeline"
	"declcheck/internal/project"
	"declcheck/internal/sema"
	"declcheck/internal/source"
	"declcheck/internal/trace"
)

// Check loads path and runs the selected stages over it. Load failures are
// reported as an IO diagnostic on a StageLoad outcome, not as an error; the
// error is reserved for cancellation.
func Check(ctx context.Context, path string, opts Options) (*Result, error) {
	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeRun, "check", trace.ParentSpan(ctx))
	defer run.End("")
	ctx = trace.WithParent(ctx, run.ID())

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(path)
	if err != nil {
		res := loadFailure(path, err, opts)
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: err})
		return res, nil
	}
	return checkFile(ctx, fileSet.Get(id), opts)
}

// CheckSource runs the stages over in-memory text registered as name.
func CheckSource(ctx context.Context, name, src string, opts Options) (*Result, error) {
	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeRun, "check", trace.ParentSpan(ctx))
	defer run.End("")
	ctx = trace.WithParent(ctx, run.ID())

	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(name, []byte(src))
	return checkFile(ctx, fileSet.Get(id), opts)
}

func loadFailure(path string, err error, opts Options) *Result {
	bag := diag.NewBag(opts.Analysis.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, 0, "failed to load file: "+err.Error()))
	return &Result{
		Path:     path,
		Outcomes: []StageOutcome{{Stage: pipeline.StageLoad, Status: pipeline.StatusError, Bag: bag}},
	}
}

func checkFile(ctx context.Context, file *source.File, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := cacheKey(file, opts)
	if res, ok := lookupCache(ctx, opts, key, file); ok {
		res.File = file
		pipeline.Emit(opts.Progress, pipeline.Event{File: file.Path, Stage: res.lastStage(), Status: pipeline.StatusCached})
		return res, nil
	}

	res := &Result{Path: file.Path, FileID: file.ID, File: file, Hash: project.Digest(file.Hash)}
	var timer *observ.Timer
	if opts.Timer != nil {
		timer = observ.NewTimer()
	}
	if err := runStages(ctx, file, opts, res, timer); err != nil {
		return res, err
	}
	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	storeCache(ctx, opts, key, res)
	pipeline.Emit(opts.Progress, pipeline.Event{File: file.Path, Stage: res.lastStage(), Status: res.Status()})
	return res, nil
}

func runStages(ctx context.Context, file *source.File, opts Options, res *Result, timer *observ.Timer) error {
	tr := trace.FromContext(ctx)
	fileSpan := trace.Begin(tr, trace.ScopeFile, "file:"+file.Path, trace.ParentSpan(ctx))
	defer func() {
		fileSpan.WithExtra("passed", strconv.FormatBool(res.Passed())).End("")
	}()

	src := file.Text()
	gateClosed := false
	for _, stage := range opts.stages().Stages() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if gateClosed {
			res.Outcomes = append(res.Outcomes, StageOutcome{Stage: stage, Status: pipeline.StatusSkipped})
			pipeline.Emit(opts.Progress, pipeline.Event{File: file.Path, Stage: stage, Status: pipeline.StatusSkipped})
			continue
		}
		pipeline.Emit(opts.Progress, pipeline.Event{File: file.Path, Stage: stage, Status: pipeline.StatusWorking})

		span := trace.Begin(tr, trace.ScopeStage, string(stage), fileSpan.ID())
		start := time.Now()
		bag, passed := runStage(stage, src, opts.Analysis, res)
		elapsed := time.Since(start)
		span.WithExtra("passed", strconv.FormatBool(passed)).
			WithExtra("diagnostics", strconv.Itoa(bag.Len())).
			End("")
		for _, d := range bag.Items() {
			trace.Point(tr, trace.ScopeLine, "diagnostic", d.Code.ID()+" "+d.String(), span.ID())
		}

		status := pipeline.StatusPassed
		if !passed {
			status = pipeline.StatusFailed
			if !opts.NoGate {
				gateClosed = true
			}
		}
		res.Outcomes = append(res.Outcomes, StageOutcome{Stage: stage, Status: status, Bag: bag, Elapsed: elapsed})
		timer.Record(string(stage), elapsed, strconv.Itoa(bag.Len())+" diagnostics")
		opts.Timer.Record(file.Path+" "+string(stage), elapsed, "")
	}
	return nil
}

func runStage(stage pipeline.Stage, src string, opts lexer.Options, res *Result) (*diag.Bag, bool) {
	switch stage {
	case pipeline.StageLexical:
		res.Lexical = lexer.Analyze(src, opts)
		return res.Lexical.Bag, res.Lexical.Passed
	case pipeline.StageSyntax:
		res.Syntax = parser.Analyze(src, opts)
		return res.Syntax.Bag, res.Syntax.Passed
	case pipeline.StageSemantic:
		res.Semantic = sema.Analyze(src, opts)
		return res.Semantic.Bag, res.Semantic.Passed
	}
	return diag.NewBag(0), true
}
