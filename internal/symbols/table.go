package symbols

import "declcheck/internal/types"

// Entry is one declared variable.
type Entry struct {
	Name string
	Type types.Primitive
	Line uint32
}

// Table is the per-run symbol table. It keeps declaration order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Declare registers name. It returns the existing entry and false when the
// name is already taken.
func (t *Table) Declare(name string, typ types.Primitive, line uint32) (Entry, bool) {
	if i, ok := t.index[name]; ok {
		return t.entries[i], false
	}
	e := Entry{Name: name, Type: typ, Line: line}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, e)
	return e, true
}

// Lookup finds a declared name.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
