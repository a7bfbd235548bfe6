package dialect

import (
	"fmt"
	"strings"

	"record2ddl/internal/schema"
)

type MSSQLDialect struct{}

// Tables are created in the default dbo schema.
const mssqlSchema = "dbo"

func (d *MSSQLDialect) Name() string   { return "sqlserver" }
func (d *MSSQLDialect) Driver() string { return "sqlserver" }

func (d *MSSQLDialect) TableName(t *schema.Table, opts Options) string {
	return d.QuoteIdent(mssqlSchema) + "." + d.QuoteIdent(PrefixedName(t, opts))
}

// CreateTable guards every statement so a second run is a no-op. The table
// comment is stored as the MS_Description extended property.
func (d *MSSQLDialect) CreateTable(t *schema.Table, opts Options) []string {
	raw := PrefixedName(t, opts)
	name := d.TableName(t, opts)
	object := fmt.Sprintf("N'%s.%s'", mssqlSchema, EscapeString(raw))

	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, fmt.Sprintf("  %s %s NOT NULL", d.QuoteIdent(c.Name), d.ColumnType(c)))
	}
	primary, secondary := PresentKeys(t, opts.Keys)
	if len(primary) > 0 {
		lines = append(lines, fmt.Sprintf("  CONSTRAINT %s PRIMARY KEY (%s)", d.QuoteIdent("PK_"+raw), d.quoteAll(primary)))
	}

	stmts := []string{fmt.Sprintf("IF OBJECT_ID(%s, N'U') IS NULL\nCREATE TABLE %s (\n%s\n)",
		object, name, strings.Join(lines, ",\n"))}

	for _, k := range secondary {
		idx := "IX_" + raw + "_" + k
		stmts = append(stmts, fmt.Sprintf(
			"IF NOT EXISTS (SELECT 1 FROM sys.indexes WHERE name = N'%s' AND object_id = OBJECT_ID(%s))\nCREATE INDEX %s ON %s (%s)",
			EscapeString(idx), object, d.QuoteIdent(idx), name, d.QuoteIdent(k)))
	}

	if t.Comment != "" {
		stmts = append(stmts, fmt.Sprintf(
			"IF NOT EXISTS (SELECT 1 FROM sys.extended_properties WHERE major_id = OBJECT_ID(%s) AND minor_id = 0 AND name = N'MS_Description')\n"+
				"EXEC sp_addextendedproperty @name = N'MS_Description', @value = N'%s', @level0type = N'SCHEMA', @level0name = N'%s', @level1type = N'TABLE', @level1name = N'%s'",
			object, EscapeString(t.Comment), mssqlSchema, EscapeString(raw)))
	}
	return stmts
}

func (d *MSSQLDialect) ColumnType(c *schema.Column) string {
	switch c.Type {
	case "int":
		return "INT"
	case "bigint":
		return "BIGINT"
	case "tinyint":
		return "TINYINT"
	case "float":
		return "REAL"
	case "double":
		return "FLOAT"
	case "varchar":
		return sized("NVARCHAR", c.Precision)
	case "char":
		return sized("NCHAR", c.Precision)
	default:
		return "NVARCHAR(MAX)"
	}
}

func sized(typ, precision string) string {
	if precision == "" {
		return typ
	}
	return typ + "(" + precision + ")"
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, d.quoteAll(cols), vals)
}

// TruncateQuery uses DELETE, which works regardless of referencing keys.
func (d *MSSQLDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", table)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}
