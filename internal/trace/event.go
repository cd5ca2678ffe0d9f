package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat // периодический сигнал «процесс жив»
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	}
	return "unknown"
}

// Scope is the granularity of an event; lower is coarser.
type Scope uint8

const (
	ScopeRun Scope = iota + 1
	ScopeStage
	ScopeFile
	ScopeLine
)

func (s Scope) String() string {
	switch s {
	case ScopeRun:
		return "run"
	case ScopeStage:
		return "stage"
	case ScopeFile:
		return "file"
	case ScopeLine:
		return "line"
	}
	return "unknown"
}

// Event is a single trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // присваивается трейсером при записи
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корневых
	GID      uint64
	Name     string // "check", "semantic", "file:a.java"
	Detail   string
	Extra    map[string]string
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent,
		GID:      getGoroutineID(),
		Name:     name,
		Detail:   detail,
	})
}
