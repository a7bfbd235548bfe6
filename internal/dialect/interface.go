package dialect

import "record2ddl/internal/schema"

// Dialect abstracts engine-specific DDL and DML generation.
type Dialect interface {
	Name() string
	Driver() string // database/sql driver name, empty when not executable

	// DDL Generation
	TableName(t *schema.Table, opts Options) string
	CreateTable(t *schema.Table, opts Options) []string
	ColumnType(c *schema.Column) string

	// Query Generation
	InsertQuery(table string, cols []string) string
	TruncateQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, :1
	QuoteIdent(name string) string
}

// Options are the table-level settings shared by every dialect.
type Options struct {
	Prefix   string     // table name prefix, "t_" by default
	Database string     // qualifies warehouse table names
	Keys     []KeyIndex // key clauses emitted when the column exists
}

// KeyIndex marks a column that gets a key when a table declares it.
type KeyIndex struct {
	Column  string `mapstructure:"column"`
	Primary bool   `mapstructure:"primary"`
}

// DefaultPrefix is prepended to every record name.
const DefaultPrefix = "t_"

// DefaultKeys are the key-bearing columns recognised out of the box.
var DefaultKeys = []KeyIndex{
	{Column: "pid", Primary: true},
	{Column: "role_id"},
	{Column: "mtime"},
}
