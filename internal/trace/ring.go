package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the last N events in memory for crash dumps.
type RingTracer struct {
	mu     sync.RWMutex
	events []Event
	head   int  // следующая позиция записи
	full   bool // буфер уже переполнялся
	level  Level
}

// NewRingTracer creates a ring with the given capacity (4096 if <= 0).
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}
	return &RingTracer{events: make([]Event, capacity), level: level}
}

// Emit stores a copy of ev. Unlike streams, a ring at LevelError records
// stage spans so a crash dump has something to show.
func (t *RingTracer) Emit(ev *Event) {
	if !t.accepts(ev) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.head] = stored
	t.head = (t.head + 1) % len(t.events)
	if t.head == 0 {
		t.full = true
	}
}

func (t *RingTracer) accepts(ev *Event) bool {
	if ev.Kind == KindHeartbeat {
		return true
	}
	if t.level == LevelError {
		return ev.Scope <= ScopeStage
	}
	return t.level.ShouldEmit(ev.Scope)
}

// Snapshot returns stored events oldest first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.full {
		out := make([]Event, t.head)
		copy(out, t.events[:t.head])
		return out
	}
	out := make([]Event, 0, len(t.events))
	out = append(out, t.events[t.head:]...)
	return append(out, t.events[:t.head]...)
}

// Dump writes the snapshot to w.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	if format == FormatAuto {
		format = FormatText
	}
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

func (t *RingTracer) Flush() error  { return nil }
func (t *RingTracer) Close() error  { return nil }
func (t *RingTracer) Level() Level  { return t.level }
func (t *RingTracer) Enabled() bool { return t.level > LevelOff }
