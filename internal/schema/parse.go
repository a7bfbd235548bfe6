package schema

import (
	"regexp"
	"strings"
)

// RawField is one "field=value" token of a record body.
type RawField struct {
	Name     string
	Value    string
	HasValue bool
}

var recordPattern = regexp.MustCompile(`(?s)^(\w+)[,，]*\s*\{*(.*)$`)

// ParseRecord extracts the record name and its raw fields from a complete
// record statement such as "-record(player, {name = "", age = 0})." or the
// brace-less "record player name=is_string, age=0".
func ParseRecord(stmt string) (string, []RawField, bool) {
	idx := strings.Index(strings.ToLower(stmt), "record")
	if idx < 0 {
		return "", nil, false
	}
	rest := strings.TrimLeft(stmt[idx+len("record"):], "( \t")

	m := recordPattern.FindStringSubmatch(rest)
	if m == nil {
		return "", nil, false
	}
	name, body := m[1], m[2]

	body = strings.ReplaceAll(body, "，", ",")
	body = strings.Join(strings.Fields(body), "")
	body = strings.TrimRight(body, "}).;")

	var fields []RawField
	for _, tok := range strings.Split(body, ",") {
		tok = strings.Trim(tok, "{}")
		if tok == "" {
			continue
		}
		f := RawField{Name: tok}
		if i := strings.Index(tok, "="); i >= 0 {
			f.Name, f.Value, f.HasValue = tok[:i], tok[i+1:], true
		}
		// stray brackets never belong to a field name
		f.Name = strings.Trim(f.Name, "(){}")
		if f.Name == "" {
			continue
		}
		fields = append(fields, f)
	}
	return name, fields, true
}
