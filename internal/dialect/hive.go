package dialect

import (
	"fmt"
	"strings"

	"record2ddl/internal/schema"
)

// HiveDialect renders warehouse external tables partitioned by day.
type HiveDialect struct{}

const hiveTableTemplate = `CREATE EXTERNAL TABLE IF NOT EXISTS {{.Name}} (
{{join .Lines ",\n"}}
)
  COMMENT '{{.Comment}}'
PARTITIONED BY (
  sdt STRING COMMENT 'server-side daily partition, format yyyy-MM-dd'
)
ROW FORMAT DELIMITED FIELDS TERMINATED BY '\t'
STORED AS TEXTFILE`

var hiveTable = mustTemplate("hive", hiveTableTemplate)

// string family collapsed to the warehouse STRING type
var hiveStringTypes = map[string]bool{
	"VARCHAR": true, "CHAR": true, "TEXT": true, "LONGTEXT": true, "MEDIUMTEXT": true,
}

func (d *HiveDialect) Name() string   { return "hive" }
func (d *HiveDialect) Driver() string { return "" }

func (d *HiveDialect) TableName(t *schema.Table, opts Options) string {
	if opts.Database == "" {
		return PrefixedName(t, opts)
	}
	return opts.Database + "." + PrefixedName(t, opts)
}

func (d *HiveDialect) CreateTable(t *schema.Table, opts Options) []string {
	lines := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		lines = append(lines, fmt.Sprintf("  %s %s COMMENT '%s'", c.Name, d.ColumnType(c), EscapeString(c.Comment)))
	}
	return []string{render(hiveTable, tableData{
		Name:    d.TableName(t, opts),
		Lines:   lines,
		Comment: EscapeString(t.Comment),
	})}
}

// ColumnType drops precision; the string family becomes STRING.
func (d *HiveDialect) ColumnType(c *schema.Column) string {
	typ := strings.ToUpper(c.Type)
	if hiveStringTypes[typ] {
		return "STRING"
	}
	return typ
}

func (d *HiveDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO TABLE %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), vals)
}

func (d *HiveDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *HiveDialect) Placeholder(index int) string {
	return "?"
}

func (d *HiveDialect) QuoteIdent(name string) string {
	return name
}
