package cmd

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"record2ddl/internal/compiler"
	"record2ddl/internal/dialect"
	"record2ddl/internal/schema"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
// --dsn on the command line wins over the databases list.
func GetActiveDBConfig() (*DBConfig, error) {
	if dsn := viper.GetString("database.dsn"); dsn != "" {
		return &DBConfig{
			Name:   "command line",
			Driver: detectDriver(viper.GetString("database.driver"), dsn),
			DSN:    dsn,
			Active: true,
		}, nil
	}

	var configs []DBConfig
	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0
	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true or pass --dsn)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}
	if activeConfig.Driver == "" {
		activeConfig.Driver = detectDriver("", activeConfig.DSN)
	}
	return activeConfig, nil
}

func detectDriver(explicit, dsn string) string {
	if explicit != "" {
		return explicit
	}
	switch {
	case strings.HasPrefix(dsn, "postgres") || strings.Contains(dsn, "sslmode"):
		return "postgres"
	case strings.HasPrefix(dsn, "sqlserver://"):
		return "sqlserver"
	case strings.HasPrefix(dsn, "oracle://"):
		return "oracle"
	}
	return "mysql"
}

// openDB connects to the active database and checks it is reachable.
func openDB() (*sql.DB, *DBConfig, error) {
	config, err := GetActiveDBConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, config, nil
}

// defaultColumns returns schema.default_columns, or nil for the built-in set.
func defaultColumns() ([]schema.DefaultColumn, error) {
	var cols []schema.DefaultColumn
	if err := viper.UnmarshalKey("schema.default_columns", &cols); err != nil {
		return nil, fmt.Errorf("failed to parse schema.default_columns: %w", err)
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols, nil
}

// dialectOptions builds table options from the generate and schema keys.
func dialectOptions() (dialect.Options, error) {
	opts := dialect.Options{
		Prefix:   viper.GetString("generate.prefix"),
		Database: viper.GetString("generate.database"),
		Keys:     dialect.DefaultKeys,
	}
	var keys []dialect.KeyIndex
	if err := viper.UnmarshalKey("schema.keys", &keys); err != nil {
		return opts, fmt.Errorf("failed to parse schema.keys: %w", err)
	}
	if len(keys) > 0 {
		opts.Keys = keys
	}
	return opts, nil
}

// relationalDialect resolves generate.dialect, rejecting unknown names.
func relationalDialect() (dialect.Dialect, error) {
	name := viper.GetString("generate.dialect")
	if !dialect.Supported(name) || name == "hive" {
		return nil, fmt.Errorf("unsupported dialect %q (want one of %v, hive is always rendered)", name, dialect.Names())
	}
	return dialect.GetDialect(name), nil
}

func compileRecords(path string) (*compiler.Result, error) {
	cols, err := defaultColumns()
	if err != nil {
		return nil, err
	}
	res, err := compiler.CompileFile(path, compiler.Options{
		DefaultColumns: cols,
		Logger:         logger,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("records compiled",
		zap.String("input", path),
		zap.Int("tables", len(res.Tables)),
		zap.Int("problems", res.Report.Len()))
	return res, nil
}
