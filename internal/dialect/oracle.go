package dialect

import (
	"fmt"
	"strings"

	"record2ddl/internal/schema"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string   { return "oracle" }
func (d *OracleDialect) Driver() string { return "oracle" }

// Oracle folds unquoted identifiers to upper case; names stay unquoted.
func (d *OracleDialect) TableName(t *schema.Table, opts Options) string {
	return d.QuoteIdent(PrefixedName(t, opts))
}

func (d *OracleDialect) CreateTable(t *schema.Table, opts Options) []string {
	raw := PrefixedName(t, opts)
	name := d.TableName(t, opts)

	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, fmt.Sprintf("  %s %s NOT NULL", d.QuoteIdent(c.Name), d.ColumnType(c)))
	}
	primary, secondary := PresentKeys(t, opts.Keys)
	if len(primary) > 0 {
		lines = append(lines, fmt.Sprintf("  CONSTRAINT pk_%s PRIMARY KEY (%s)", raw, strings.Join(primary, ", ")))
	}

	stmts := []string{fmt.Sprintf("CREATE TABLE %s (\n%s\n)", name, strings.Join(lines, ",\n"))}
	if t.Comment != "" {
		stmts = append(stmts, fmt.Sprintf("COMMENT ON TABLE %s IS '%s'", name, EscapeString(t.Comment)))
	}
	for _, c := range t.Columns {
		if c.Comment == "" {
			continue
		}
		stmts = append(stmts, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS '%s'", name, c.Name, EscapeString(c.Comment)))
	}
	for _, k := range secondary {
		stmts = append(stmts, fmt.Sprintf("CREATE INDEX ix_%s_%s ON %s (%s)", raw, k, name, k))
	}
	return stmts
}

func (d *OracleDialect) ColumnType(c *schema.Column) string {
	switch c.Type {
	case "int":
		return "NUMBER(10)"
	case "bigint":
		return "NUMBER(19)"
	case "tinyint":
		return "NUMBER(3)"
	case "float":
		return "BINARY_FLOAT"
	case "double":
		return "BINARY_DOUBLE"
	case "varchar":
		return sized("VARCHAR2", c.Precision)
	case "char":
		return sized("CHAR", c.Precision)
	default:
		return "CLOB"
	}
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return name
}
