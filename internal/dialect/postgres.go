package dialect

import (
	"fmt"
	"strings"

	"record2ddl/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string   { return "postgres" }
func (d *PostgresDialect) Driver() string { return "postgres" }

func (d *PostgresDialect) TableName(t *schema.Table, opts Options) string {
	return d.QuoteIdent(PrefixedName(t, opts))
}

// CreateTable emits the table, then COMMENT ON and CREATE INDEX statements,
// since PostgreSQL has no inline column comments or secondary keys.
func (d *PostgresDialect) CreateTable(t *schema.Table, opts Options) []string {
	name := d.TableName(t, opts)
	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, fmt.Sprintf("  %s %s NOT NULL", d.QuoteIdent(c.Name), d.ColumnType(c)))
	}
	primary, secondary := PresentKeys(t, opts.Keys)
	if len(primary) > 0 {
		lines = append(lines, fmt.Sprintf("  PRIMARY KEY (%s)", d.quoteAll(primary)))
	}

	stmts := []string{fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", name, strings.Join(lines, ",\n"))}
	if t.Comment != "" {
		stmts = append(stmts, fmt.Sprintf("COMMENT ON TABLE %s IS '%s'", name, EscapeString(t.Comment)))
	}
	for _, c := range t.Columns {
		if c.Comment == "" {
			continue
		}
		stmts = append(stmts, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS '%s'", name, d.QuoteIdent(c.Name), EscapeString(c.Comment)))
	}
	for _, k := range secondary {
		idx := d.QuoteIdent(PrefixedName(t, opts) + "_" + k)
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s)", idx, name, d.QuoteIdent(k)))
	}
	return stmts
}

func (d *PostgresDialect) ColumnType(c *schema.Column) string {
	switch c.Type {
	case "int":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "tinyint":
		return "SMALLINT"
	case "float":
		return "REAL"
	case "double":
		return "DOUBLE PRECISION"
	case "varchar", "char":
		return strings.ToUpper(c.TypeString())
	default:
		return "TEXT"
	}
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING", table, d.quoteAll(cols), vals)
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *PostgresDialect) quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}
