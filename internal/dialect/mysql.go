package dialect

import (
	"fmt"
	"strings"

	"record2ddl/internal/schema"
)

type MysqlDialect struct{}

const mysqlTableTemplate = `CREATE TABLE IF NOT EXISTS {{.Name}} (
{{join .Lines ",\n"}}
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COMMENT='{{.Comment}}'`

var mysqlTable = mustTemplate("mysql", mysqlTableTemplate)

type tableData struct {
	Name    string
	Lines   []string
	Comment string
}

func (d *MysqlDialect) Name() string   { return "mysql" }
func (d *MysqlDialect) Driver() string { return "mysql" }

func (d *MysqlDialect) TableName(t *schema.Table, opts Options) string {
	return d.QuoteIdent(PrefixedName(t, opts))
}

func (d *MysqlDialect) CreateTable(t *schema.Table, opts Options) []string {
	var lines []string
	for _, c := range t.Columns {
		lines = append(lines, fmt.Sprintf("  %s %s NOT NULL COMMENT '%s'",
			d.QuoteIdent(c.Name), d.ColumnType(c), EscapeString(c.Comment)))
	}

	primary, secondary := PresentKeys(t, opts.Keys)
	for _, k := range primary {
		lines = append(lines, fmt.Sprintf("  PRIMARY KEY (%s)", d.QuoteIdent(k)))
	}
	for _, k := range secondary {
		lines = append(lines, fmt.Sprintf("  KEY %s(%s)", d.QuoteIdent(k), d.QuoteIdent(k)))
	}

	return []string{render(mysqlTable, tableData{
		Name:    d.TableName(t, opts),
		Lines:   lines,
		Comment: EscapeString(t.Comment),
	})}
}

func (d *MysqlDialect) ColumnType(c *schema.Column) string {
	return strings.ToUpper(c.TypeString())
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	return fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s)", table, strings.Join(quoted, ", "), vals)
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
