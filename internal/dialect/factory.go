package dialect

import "sort"

var registry = map[string]func() Dialect{
	"mysql":     func() Dialect { return &MysqlDialect{} },
	"hive":      func() Dialect { return &HiveDialect{} },
	"postgres":  func() Dialect { return &PostgresDialect{} },
	"sqlserver": func() Dialect { return &MSSQLDialect{} },
	"mssql":     func() Dialect { return &MSSQLDialect{} },
	"oracle":    func() Dialect { return &OracleDialect{} },
}

// GetDialect returns the Dialect implementation for name, MySQL by default.
func GetDialect(name string) Dialect {
	if f, ok := registry[name]; ok {
		return f()
	}
	return &MysqlDialect{}
}

// Supported reports whether name selects a known dialect.
func Supported(name string) bool {
	_, ok := registry[name]
	return ok
}

// Names lists the accepted dialect names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*HiveDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)
