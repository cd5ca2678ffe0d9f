package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("lexical")
	tm.End(idx, "3 lines")
	tm.Record("syntax", 2*time.Millisecond, "")
	tm.End(99, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 || rep.Phases[0].Note != "3 lines" {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.TotalMS < 2 {
		t.Fatalf("total must include recorded phase, got %v", rep.TotalMS)
	}
	sum := tm.Summary()
	if !strings.HasPrefix(sum, "timings:\n") || !strings.Contains(sum, "// 3 lines") || !strings.Contains(sum, "total") {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer reports nothing")
	}
}
