package dialect

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"record2ddl/internal/schema"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// PrefixedName is the unqualified table name, prefix + record name.
func PrefixedName(t *schema.Table, opts Options) string {
	return opts.Prefix + t.Name
}

// EscapeString doubles single quotes for use inside a SQL string literal.
func EscapeString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// PresentKeys returns the keys whose column exists in t, primary first.
func PresentKeys(t *schema.Table, keys []KeyIndex) (primary []string, secondary []string) {
	for _, k := range keys {
		if t.Column(k.Column) == nil {
			continue
		}
		if k.Primary {
			primary = append(primary, k.Column)
		} else {
			secondary = append(secondary, k.Column)
		}
	}
	return primary, secondary
}

// FormatLiteral renders a Go value as a SQL literal.
func FormatLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + EscapeString(val) + "'"
	case []byte:
		return "'" + EscapeString(string(val)) + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + val.Format("2006-01-02 15:04:05") + "'"
	case float32, float64:
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// InsertStatement builds an INSERT with literal values, for scripts.
func InsertStatement(d Dialect, table string, cols []string, values []interface{}) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	lits := make([]string, len(values))
	for i, v := range values {
		lits[i] = FormatLiteral(v)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(quoted, ", "), strings.Join(lits, ", "))
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).Parse(text))
}

// render executes a static template. Templates and data are fixed by this
// package, so an execution error is a programming error.
func render(t *template.Template, data interface{}) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(fmt.Sprintf("dialect: template %s: %v", t.Name(), err))
	}
	return b.String()
}
