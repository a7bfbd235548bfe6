// Package macro stores -define and -field values and performs the textual
// substitution between them.
//
// Substitution is shallow: ResolveSelfReferences performs one
// layer of define-into-define replacement, so a chain such as
// A -> B -> C may stay partially unresolved. There is no cycle detection.
package macro

import (
	"regexp"
	"strings"
)

// Keywords recognised at the start of a macro statement.
const (
	DefineKeyword = "-define"
	FieldKeyword  = "-field"
)

var statementPattern = regexp.MustCompile(`^\s*['"‘“]*(\w+)['"’”]*\s*[,，]\s*['"]*(.+?)\s*$`)

// ParseStatement extracts (name, value) from "-define(NAME, VALUE)." style
// text. keyword selects which statement is expected.
func ParseStatement(line, keyword string) (name, value string, ok bool) {
	idx := strings.Index(strings.ToLower(line), keyword)
	if idx < 0 {
		return "", "", false
	}
	body := strings.TrimSpace(line[idx+len(keyword):])
	body = strings.TrimPrefix(body, "(")
	body = strings.TrimSuffix(body, ".")
	body = strings.TrimSuffix(strings.TrimSpace(body), ")")

	m := statementPattern.FindStringSubmatch(body)
	if m == nil {
		return "", "", false
	}
	name = m[1]
	value = m[2]
	if i := strings.LastIndex(value, "'"); i >= 0 {
		value = value[:i]
	}
	value = strings.TrimSpace(strings.NewReplacer("'", "", `"`, "").Replace(value))
	return name, value, true
}

// ordered is an insertion-ordered string map.
type ordered struct {
	names  []string
	values map[string]string
}

func (o *ordered) set(name, value string) {
	if o.values == nil {
		o.values = make(map[string]string)
	}
	if _, ok := o.values[name]; !ok {
		o.names = append(o.names, name)
	}
	o.values[name] = value
}

// Table is the process-wide macro table of one compilation run.
type Table struct {
	defines ordered
	fields  ordered
}

func NewTable() *Table {
	return &Table{}
}

// Define inserts or overwrites a -define value.
func (t *Table) Define(name, value string) {
	t.defines.set(name, value)
}

// Field inserts or overwrites a -field value.
func (t *Table) Field(name, value string) {
	t.fields.set(name, value)
}

// DefineValue returns the current value of a define.
func (t *Table) DefineValue(name string) (string, bool) {
	v, ok := t.defines.values[name]
	return v, ok
}

// FieldValue returns the current value of a field entry.
func (t *Table) FieldValue(name string) (string, bool) {
	v, ok := t.fields.values[name]
	return v, ok
}

func (t *Table) Defines() int { return len(t.defines.names) }
func (t *Table) Fields() int  { return len(t.fields.names) }

// ResolveSelfReferences substitutes define names found inside other define
// values. Every value is rewritten from its value before the pass, using the
// other defines' values before the pass, so exactly one layer is expanded.
func (t *Table) ResolveSelfReferences() {
	before := make(map[string]string, len(t.defines.values))
	for k, v := range t.defines.values {
		before[k] = v
	}
	for _, b := range t.defines.names {
		v := before[b]
		for _, a := range t.defines.names {
			if a == b || !strings.Contains(before[b], a) {
				continue
			}
			v = strings.ReplaceAll(v, a, before[a])
		}
		t.defines.values[b] = v
	}
}

// ApplyToFields rewrites field values through the define table. A value equal
// to a define name is replaced wholesale; otherwise the first define (in
// declaration order) found as a substring is replaced and scanning stops.
func (t *Table) ApplyToFields() {
	for _, name := range t.fields.names {
		value := t.fields.values[name]
		if v, ok := t.defines.values[value]; ok {
			t.fields.values[name] = v
			continue
		}
		for _, d := range t.defines.names {
			if strings.Contains(value, d) {
				t.fields.values[name] = strings.ReplaceAll(value, d, t.defines.values[d])
				break
			}
		}
	}
}

// Resolve runs both substitution passes. Nothing happens unless both tables
// hold at least one entry.
func (t *Table) Resolve() {
	if t.Defines() == 0 || t.Fields() == 0 {
		return
	}
	t.ResolveSelfReferences()
	t.ApplyToFields()
}

// SplitFieldValue reads a field value of the form "remark;type[:precision]".
// A value without ';' is a bare type hint.
func SplitFieldValue(value string) (remark, typeHint string) {
	i := strings.Index(value, ";")
	if i < 0 {
		return "", strings.ToLower(strings.TrimSpace(value))
	}
	remark = strings.TrimSpace(value[:i])
	rest := value[i+1:]
	if j := strings.Index(rest, ";"); j >= 0 {
		rest = rest[:j]
	}
	return remark, strings.ToLower(strings.TrimSpace(rest))
}
