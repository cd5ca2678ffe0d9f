package pipeline

import (
	"sync"
	"time"
)

// Timings accumulates per-stage durations; safe for concurrent use.
type Timings struct {
	mu     sync.Mutex
	stages map[Stage]time.Duration
	counts map[Stage]int
}

// Add accumulates dur for stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
		t.counts = make(map[Stage]int)
	}
	t.stages[stage] += dur
	t.counts[stage]++
}

// Has reports whether stage ran at least once.
func (t *Timings) Has(stage Stage) bool {
	return t.Count(stage) > 0
}

// Count is the number of Add calls for stage.
func (t *Timings) Count(stage Stage) int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[stage]
}

// Duration returns the accumulated duration for stage.
func (t *Timings) Duration(stage Stage) time.Duration {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stages[stage]
}

// Sum returns the total over stages.
func (t *Timings) Sum(stages ...Stage) time.Duration {
	var total time.Duration
	for _, s := range stages {
		total += t.Duration(s)
	}
	return total
}
