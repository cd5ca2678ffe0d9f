package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"declcheck/internal/pipeline"
	"declcheck/internal/source"
	"declcheck/internal/trace"
)

// ListFiles возвращает отсортированный список файлов с подходящими расширениями
func ListFiles(dir string, opts Options) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && opts.matches(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every matching file under dir in parallel. Results are in
// path order. The error is non-nil for walk failures and cancellation; per
// file load failures become IO diagnostics.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []*Result, error) {
	files, err := ListFiles(dir, opts)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tr := trace.FromContext(ctx)
	run := trace.Begin(tr, trace.ScopeRun, "check-dir", trace.ParentSpan(ctx))
	defer run.End(dir)
	ctx = trace.WithParent(ctx, run.ID())

	// Предзагружаем файлы: FileSet не потокобезопасен
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			loadErrors[path] = loadErr
			continue
		}
		fileIDs[path] = id
		pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			if loadErr, failed := loadErrors[path]; failed {
				results[i] = loadFailure(path, loadErr, opts)
				pipeline.Emit(opts.Progress, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: loadErr})
				return nil
			}
			res, checkErr := checkFile(gctx, fileSet.Get(fileIDs[path]), opts)
			results[i] = res
			return checkErr
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// Summary counts per-file outcomes of a directory run.
type Summary struct {
	Files  int
	Passed int
	Failed int
	Errors int
	Cached int
}

// Summarize counts results; nil entries (cancelled files) are ignored.
func Summarize(results []*Result) Summary {
	var s Summary
	for _, r := range results {
		if r == nil {
			continue
		}
		s.Files++
		if r.Cached {
			s.Cached++
		}
		switch {
		case r.hasStatus(pipeline.StatusError):
			s.Errors++
		case r.Passed():
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// OK reports whether every file passed.
func (s Summary) OK() bool { return s.Failed == 0 && s.Errors == 0 }
