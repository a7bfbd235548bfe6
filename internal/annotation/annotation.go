// Package annotation holds the per-record field hints read from "%%" comment
// lines of the form "%% field; remark; type[:precision]".
package annotation

import "strings"

// Entry is one parsed annotation line.
type Entry struct {
	Field    string
	Remark   string
	TypeHint string // lowercased, may carry ":precision"
}

// Parse reads an annotation line. Percent signs and quotes are dropped before
// the text is split on ';'. It returns false when no field name remains.
func Parse(line string) (Entry, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '%', '\'', '"':
			return -1
		}
		return r
	}, line)

	parts := strings.Split(strings.TrimSpace(cleaned), ";")
	e := Entry{Field: strings.TrimSpace(parts[0])}
	if e.Field == "" {
		return Entry{}, false
	}
	if len(parts) > 1 {
		e.Remark = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		e.TypeHint = strings.ToLower(strings.TrimSpace(parts[2]))
	}
	return e, true
}

// Table stores annotations keyed by field name in insertion order.
// Its scope is a single record: callers Take what they match and Reset after.
type Table struct {
	order   []string
	entries map[string]Entry
}

func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Put inserts or overwrites. An overwritten entry keeps its original position.
func (t *Table) Put(e Entry) {
	if t.entries == nil {
		t.entries = make(map[string]Entry)
	}
	if _, ok := t.entries[e.Field]; !ok {
		t.order = append(t.order, e.Field)
	}
	t.entries[e.Field] = e
}

// Take returns and removes the entry for field.
func (t *Table) Take(field string) (Entry, bool) {
	e, ok := t.entries[field]
	if !ok {
		return Entry{}, false
	}
	delete(t.entries, field)
	for i, name := range t.order {
		if name == field {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return e, true
}

// Remaining returns the unconsumed entries in insertion order.
func (t *Table) Remaining() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name])
	}
	return out
}

func (t *Table) Len() int {
	return len(t.order)
}

func (t *Table) Reset() {
	t.order = nil
	t.entries = make(map[string]Entry)
}

// TableComment folds unconsumed entries into a table comment. From each field
// text ("。" read as ".") only the part after the first '.' is kept, if any.
func TableComment(entries []Entry) string {
	var parts []string
	for _, e := range entries {
		s := strings.ReplaceAll(e.Field, "。", ".")
		if i := strings.Index(s, "."); i >= 0 {
			s = s[i+1:]
		}
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
