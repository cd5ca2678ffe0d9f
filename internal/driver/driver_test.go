package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-test/deep"

	"declcheck/internal/diag"
	"declcheck/internal/observ"
	"declcheck/internal/pipeline"
	"declcheck/internal/testkit"
	"declcheck/internal/trace"
)

func statuses(res *Result) []pipeline.Status {
	out := make([]pipeline.Status, len(res.Outcomes))
	for i, o := range res.Outcomes {
		out[i] = o.Status
	}
	return out
}

func TestParseStages(t *testing.T) {
	tests := []struct {
		in   string
		want StageSet
	}{
		{"", AllStages},
		{"all", AllStages},
		{"lexical", StageLexical},
		{"syntax, semantic", StageSyntax | StageSemantic},
		{"LEXICAL,all", AllStages},
	}
	for _, tt := range tests {
		got, err := ParseStages(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStages(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseStages("lexical,parse"); err == nil {
		t.Fatal("expected error for unknown stage")
	}
	if s := (StageSyntax | StageLexical).String(); s != "lexical,syntax" {
		t.Fatalf("String() = %q", s)
	}
}

func TestCheckSourcePasses(t *testing.T) {
	res, err := CheckSource(context.Background(), "ok.java", "int a = 5;\ndouble b = 2.5;\n", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Passed() || res.Status() != pipeline.StatusPassed {
		t.Fatalf("expected pass, got %v", res.Diagnostics())
	}
	want := []pipeline.Status{pipeline.StatusPassed, pipeline.StatusPassed, pipeline.StatusPassed}
	if diff := deep.Equal(statuses(res), want); diff != nil {
		t.Fatal(diff)
	}
	if res.Lexical.TokenCount != 10 || len(res.Syntax.Decls) != 2 || len(res.Semantic.Symbols) != 2 {
		t.Fatalf("unexpected stage results %d/%d/%d", res.Lexical.TokenCount, len(res.Syntax.Decls), len(res.Semantic.Symbols))
	}
}

func TestCheckSourceGates(t *testing.T) {
	res, err := CheckSource(context.Background(), "bad.java", "print(x);", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []pipeline.Status{pipeline.StatusFailed, pipeline.StatusSkipped, pipeline.StatusSkipped}
	if diff := deep.Equal(statuses(res), want); diff != nil {
		t.Fatal(diff)
	}
	if res.Syntax != nil || res.Semantic != nil {
		t.Fatal("skipped stages must not run")
	}
	if res.FailedStage() != pipeline.StageLexical {
		t.Fatalf("FailedStage = %q", res.FailedStage())
	}
}

func TestCheckSourceSemanticFailure(t *testing.T) {
	res, _ := CheckSource(context.Background(), "mismatch.java", `int x = "hello";`, Options{})
	if res.Passed() || res.FailedStage() != pipeline.StageSemantic {
		t.Fatalf("expected semantic failure, got %v", statuses(res))
	}
	got := diag.FormatShortDiagnostics(res.Diagnostics(), res.Path, false)
	want := "error SEM3007 mismatch.java:1 Type mismatch - cannot assign String literal to int 'x'"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
}

func TestCheckSourceNoGate(t *testing.T) {
	res, _ := CheckSource(context.Background(), "custom.java", "Foo bar;", Options{NoGate: true})
	want := []pipeline.Status{pipeline.StatusFailed, pipeline.StatusPassed, pipeline.StatusFailed}
	if diff := deep.Equal(statuses(res), want); diff != nil {
		t.Fatal(diff)
	}
}

func TestDiagnosticsMergeStagesInOrder(t *testing.T) {
	opts := Options{NoGate: true}
	opts.Analysis.MaxDiagnostics = 1
	res, _ := CheckSource(context.Background(), "custom.java", "Foo bar;\nBaz qux;", opts)
	lex, _ := res.Outcome(pipeline.StageLexical)
	sem, _ := res.Outcome(pipeline.StageSemantic)
	if lex.Bag.Len() != 1 || sem.Bag.Len() != 1 {
		t.Fatalf("each stage bag is capped at one, got %d/%d", lex.Bag.Len(), sem.Bag.Len())
	}
	got := res.Diagnostics()
	want := append(append([]diag.Diagnostic(nil), lex.Bag.Items()...), sem.Bag.Items()...)
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatal(diff)
	}
	if !strings.HasPrefix(got[0].Code.ID(), "LEX") || !strings.HasPrefix(got[1].Code.ID(), "SEM") {
		t.Fatalf("unexpected order %v %v", got[0].Code, got[1].Code)
	}
	for _, d := range got {
		if d.Severity != diag.SevError {
			t.Fatalf("analyzers emit errors only, got %v", d.Severity)
		}
	}
}

func TestCheckSourceStageSelection(t *testing.T) {
	res, _ := CheckSource(context.Background(), "a.java", "Foo bar;", Options{Stages: StageSyntax})
	if len(res.Outcomes) != 1 || res.Outcomes[0].Stage != pipeline.StageSyntax || !res.Passed() {
		t.Fatalf("unexpected outcomes %+v", res.Outcomes)
	}
	if res.Lexical != nil || res.Semantic != nil {
		t.Fatal("unselected stages must not run")
	}
}

func TestCheckSourceEmpty(t *testing.T) {
	res, _ := CheckSource(context.Background(), "empty.java", "  \n\t\n", Options{})
	lex, ok := res.Outcome(pipeline.StageLexical)
	if !ok || lex.Passed() {
		t.Fatal("empty input fails the lexical stage")
	}
	items := lex.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOEmptySource || !items[0].TopLevel() {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
}

func TestCheckLoadFailure(t *testing.T) {
	res, err := Check(context.Background(), filepath.Join(t.TempDir(), "missing.java"), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status() != pipeline.StatusError {
		t.Fatalf("status = %q", res.Status())
	}
	items := res.Diagnostics()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("unexpected diagnostics %+v", items)
	}
}

func TestCheckCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := CheckSource(ctx, "a.java", "int a;", Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCheckTimingsAndTrace(t *testing.T) {
	tr := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), tr)
	timer := observ.NewTimer()
	res, err := CheckSource(ctx, "a.java", `int x = "s";`, Options{Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if res.Timing == nil || len(res.Timing.Phases) != 3 {
		t.Fatalf("expected three timed phases, got %+v", res.Timing)
	}
	if len(timer.Report().Phases) != 3 {
		t.Fatal("shared timer must receive one phase per stage")
	}

	var stageEnds, points int
	for _, ev := range tr.Snapshot() {
		switch {
		case ev.Kind == trace.KindSpanEnd && ev.Scope == trace.ScopeStage:
			stageEnds++
			if ev.Extra["passed"] == "" || ev.Extra["diagnostics"] == "" {
				t.Fatalf("stage span without extras: %+v", ev)
			}
		case ev.Kind == trace.KindPoint && ev.Scope == trace.ScopeLine:
			points++
		}
	}
	if stageEnds != 3 || points != 1 {
		t.Fatalf("stage ends %d, line points %d", stageEnds, points)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("a.java", "int a = 1;\n")
	write("nested/b.decl", "int b = \"x\";\n")
	write("c.java", "print(c);\n")
	write("notes.txt", "ignored\n")

	var mu sync.Mutex
	final := map[string]pipeline.Status{}
	sink := pipeline.FuncSink(func(ev pipeline.Event) {
		if !ev.Status.Terminal() {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		final[filepath.Base(ev.File)] = ev.Status
	})

	_, results, err := CheckDir(context.Background(), dir, Options{Jobs: 2, Progress: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	// порядок путей детерминирован
	names := []string{filepath.Base(results[0].Path), filepath.Base(results[1].Path), filepath.Base(results[2].Path)}
	if diff := deep.Equal(names, []string{"a.java", "c.java", "b.decl"}); diff != nil {
		t.Fatal(diff)
	}
	want := map[string]pipeline.Status{
		"a.java": pipeline.StatusPassed,
		"b.decl": pipeline.StatusFailed,
		"c.java": pipeline.StatusFailed,
	}
	if diff := deep.Equal(final, want); diff != nil {
		t.Fatal(diff)
	}
	sum := Summarize(results)
	if sum.Files != 3 || sum.Passed != 1 || sum.Failed != 2 || sum.OK() {
		t.Fatalf("unexpected summary %+v", sum)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := CheckDir(context.Background(), t.TempDir(), Options{})
	if err != nil || results != nil {
		t.Fatalf("expected no results, got %v %v", results, err)
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}
	src := "int a = 1;\nint b = a + \"x\";\n"

	first, err := CheckSource(context.Background(), "a.java", src, opts)
	if err != nil || first.Cached {
		t.Fatalf("first run: cached=%v err=%v", first.Cached, err)
	}
	second, err := CheckSource(context.Background(), "a.java", src, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached || second.Status() != pipeline.StatusCached {
		t.Fatal("second run must come from the cache")
	}
	if diff := deep.Equal(second.Diagnostics(), first.Diagnostics()); diff != nil {
		t.Fatal(diff)
	}
	if diff := deep.Equal(statuses(second), statuses(first)); diff != nil {
		t.Fatal(diff)
	}
	if second.Passed() != first.Passed() || second.Lexical.TokenCount != first.Lexical.TokenCount {
		t.Fatal("cached result differs")
	}

	// другие опции - другой ключ
	third, _ := CheckSource(context.Background(), "a.java", src, Options{Cache: cache, NoGate: true})
	if third.Cached {
		t.Fatal("options must be part of the cache key")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	fourth, _ := CheckSource(context.Background(), "a.java", src, opts)
	if fourth.Cached {
		t.Fatal("DropAll must invalidate entries")
	}
}

func TestCheckSourceOutcomesKeepInvariants(t *testing.T) {
	sources := []string{
		"int a = 5;\ndouble b = 3.14;\nboolean c = true;",
		"int a;\nint a;\nString s = a;",
		"// header\nint x = \"hi\";\nprint(x);\n",
		"char c = 'x';\nint n = c + 1 /* sum */;",
		"",
	}
	for _, src := range sources {
		res, err := CheckSource(context.Background(), "inv.java", src, Options{NoGate: true})
		if err != nil {
			t.Fatalf("CheckSource(%q): %v", src, err)
		}
		for _, o := range res.Outcomes {
			if err := testkit.CheckDiagnostics(src, o.Passed(), o.Bag); err != nil {
				t.Errorf("%s stage on %q: %v", o.Stage, src, err)
			}
		}
		if err := testkit.CheckLexical(src, res.Lexical); err != nil {
			t.Errorf("lexical result on %q: %v", src, err)
		}
		if err := testkit.CheckSemantic(src, res.Semantic); err != nil {
			t.Errorf("semantic result on %q: %v", src, err)
		}
	}
}
