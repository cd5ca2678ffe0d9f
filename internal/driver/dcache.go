package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"declcheck/internal/ast"
	"declcheck/internal/diag"
	"declcheck/internal/lexer"
	"declcheck/internal/parser"
	"declcheck/internal/pipeline"
	"declcheck/internal/project"
	"declcheck/internal/sema"
	"declcheck/internal/source"
	"declcheck/internal/symbols"
	"declcheck/internal/trace"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки файла по ключу содержимого и опций.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the serialized form of a Result. Bags are flattened to
// diagnostic slices since their limits live in the options fingerprint.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path   string
	Hash   project.Digest
	Stages []DiskStage

	// Lexical
	TokenCount int
	Lines      []lexer.LineTokens
	// Syntax
	Decls []ast.Declaration
	// Semantic
	Symbols []symbols.Entry
}

// DiskStage is one StageOutcome without its timing.
type DiskStage struct {
	Stage       string
	Status      string
	Diagnostics []diag.Diagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir as the cache root.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	// Подкаталог "results" упрощает очистку.
	return filepath.Join(c.dir, "results", key.String()+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименовываем, чтобы параллельный Put не писал в удаляемый каталог
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func cacheKey(file *source.File, opts Options) project.Digest {
	schema := project.Sum("declcheck-results", strconv.Itoa(int(diskCacheSchemaVersion)))
	return project.Combine(project.Digest(file.Hash), schema, opts.fingerprint())
}

func lookupCache(ctx context.Context, opts Options, key project.Digest, file *source.File) (*Result, bool) {
	if opts.Cache == nil {
		return nil, false
	}
	var payload DiskPayload
	ok, err := opts.Cache.Get(key, &payload)
	if err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error(), trace.ParentSpan(ctx))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	res := payloadToResult(&payload, opts)
	res.Path = file.Path
	res.FileID = file.ID
	return res, true
}

func storeCache(ctx context.Context, opts Options, key project.Digest, res *Result) {
	if opts.Cache == nil {
		return
	}
	if err := opts.Cache.Put(key, resultToPayload(res)); err != nil {
		trace.Point(trace.FromContext(ctx), trace.ScopeFile, "cache-error", err.Error(), trace.ParentSpan(ctx))
	}
}

func resultToPayload(res *Result) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   res.Path,
		Hash:   res.Hash,
		Stages: make([]DiskStage, len(res.Outcomes)),
	}
	for i, o := range res.Outcomes {
		payload.Stages[i] = DiskStage{Stage: string(o.Stage), Status: string(o.Status)}
		if o.Bag != nil {
			payload.Stages[i].Diagnostics = o.Bag.Items()
		}
	}
	if res.Lexical != nil {
		payload.TokenCount = res.Lexical.TokenCount
		payload.Lines = res.Lexical.Lines
	}
	if res.Syntax != nil {
		payload.Decls = res.Syntax.Decls
	}
	if res.Semantic != nil {
		payload.Symbols = res.Semantic.Symbols
	}
	return payload
}

func payloadToResult(payload *DiskPayload, opts Options) *Result {
	res := &Result{Path: payload.Path, Hash: payload.Hash, Cached: true}
	for _, st := range payload.Stages {
		o := StageOutcome{Stage: pipeline.Stage(st.Stage), Status: pipeline.Status(st.Status)}
		if o.Status != pipeline.StatusSkipped {
			o.Bag = diag.NewBag(opts.Analysis.MaxDiagnostics)
			for _, d := range st.Diagnostics {
				o.Bag.Add(d)
			}
		}
		res.Outcomes = append(res.Outcomes, o)
		if o.Bag == nil {
			continue
		}
		switch o.Stage {
		case pipeline.StageLexical:
			res.Lexical = &lexer.Result{Passed: o.Passed(), Bag: o.Bag, TokenCount: payload.TokenCount, Lines: payload.Lines}
		case pipeline.StageSyntax:
			res.Syntax = &parser.Result{Passed: o.Passed(), Bag: o.Bag, Decls: payload.Decls}
		case pipeline.StageSemantic:
			res.Semantic = &sema.Result{Passed: o.Passed(), Bag: o.Bag, Symbols: payload.Symbols}
		}
	}
	return res
}
