package schema

import "strconv"

// Table is the resolved, dialect-agnostic form of one record.
type Table struct {
	Name    string
	Columns []*Column
	Comment string // 표 주석: 소비되지 않은 주석 조각
}

type Column struct {
	Name      string
	Type      string // canonical lowercase type: int, bigint, varchar ...
	Precision string // only for sized types, e.g. "100" for varchar(100)
	Comment   string
	Meaning   string // 이름/주석 분석 결과 (sample 데이터 생성용)
}

// DefaultColumn is a system column prepended to every table.
type DefaultColumn struct {
	Name      string `mapstructure:"name"`
	Type      string `mapstructure:"type"`
	Precision string `mapstructure:"precision"`
	Comment   string `mapstructure:"comment"`
}

// DefaultColumns are used when the configuration does not override them.
var DefaultColumns = []DefaultColumn{
	{Name: "pid", Type: "bigint", Comment: "PID"},
	{Name: "agent_id", Type: "int", Comment: "agent ID"},
	{Name: "server_id", Type: "int", Comment: "server ID"},
}

// Fallback type for fields nothing could type.
const (
	FallbackType      = "varchar"
	FallbackPrecision = "255"
)

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnNames lists column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// TypeString renders the canonical type with its precision, e.g. "varchar(100)".
func (c *Column) TypeString() string {
	if c.Precision == "" {
		return c.Type
	}
	return c.Type + "(" + c.Precision + ")"
}

// Length is the numeric precision, or 0 when absent or not a number.
func (c *Column) Length() int {
	n, err := strconv.Atoi(c.Precision)
	if err != nil {
		return 0
	}
	return n
}

// IsString reports whether the column belongs to the string family.
func (c *Column) IsString() bool {
	switch c.Type {
	case "varchar", "char", "text", "longtext", "mediumtext":
		return true
	}
	return false
}
