package diag

import (
	"sort"

	"fortio.org/safecast"
)

// Bag is an ordered collection of diagnostics.
type Bag struct {
	items []Diagnostic
	max   uint16 // 0 - без ограничения
}

// NewBag creates a bag holding at most max diagnostics; max <= 0 means unlimited.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint16](max)
	if err != nil || max < 0 {
		limit = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 16)),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max != 0 && len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap returns the configured limit (0 = unlimited).
func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	if b == nil {
		return nil
	}
	return b.items
}

// Messages returns diagnostics in the historical "Line <n>: <message>" form.
func (b *Bag) Messages() []string {
	out := make([]string, 0, b.Len())
	for _, d := range b.Items() {
		out = append(out, d.String())
	}
	return out
}

// Merge объединяет диагностики из другого Bag.
// Снимает лимит, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if b.max != 0 && newTotal > int(b.max) {
		if limit, err := safecast.Conv[uint16](newTotal); err == nil {
			b.max = limit
		} else {
			b.max = 0
		}
	}
	b.items = append(b.items, other.items...)
}

// Sort упорядочивает диагностики по строке; top-level (line 0) идут последними,
// как в историческом отчёте. Порядок внутри одной строки сохраняется.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		li, lj := b.items[i].Line, b.items[j].Line
		if li == lj {
			return false
		}
		if li == 0 || lj == 0 {
			return lj == 0
		}
		return li < lj
	})
}
