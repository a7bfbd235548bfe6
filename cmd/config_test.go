package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record2ddl/internal/dialect"
)

func TestDetectDriver(t *testing.T) {
	assert.Equal(t, "mysql", detectDriver("", "root:root@tcp(127.0.0.1:3306)/game"))
	assert.Equal(t, "postgres", detectDriver("", "postgres://u:p@localhost/game?sslmode=disable"))
	assert.Equal(t, "sqlserver", detectDriver("", "sqlserver://sa:pw@localhost:1433?database=game"))
	assert.Equal(t, "oracle", detectDriver("", "oracle://u:p@localhost:1521/XE"))
	assert.Equal(t, "mssql", detectDriver("mssql", "anything"))
}

func TestGetActiveDBConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.Set("databases", nil)
		viper.Set("database.dsn", "")
	})

	viper.Set("databases", []map[string]interface{}{
		{"name": "local", "driver": "mysql", "dsn": "root@tcp(localhost)/a", "active": false},
		{"name": "pg", "dsn": "postgres://localhost/b", "active": true},
	})
	cfg, err := GetActiveDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "pg", cfg.Name)
	assert.Equal(t, "postgres", cfg.Driver)

	viper.Set("database.dsn", "root@tcp(localhost)/override")
	cfg, err = GetActiveDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Driver)
	assert.Equal(t, "root@tcp(localhost)/override", cfg.DSN)
}

func TestGetActiveDBConfig_NoneActive(t *testing.T) {
	t.Cleanup(func() { viper.Set("databases", nil) })
	viper.Set("databases", []map[string]interface{}{{"name": "a", "active": false}})

	_, err := GetActiveDBConfig()
	assert.Error(t, err)
}

func TestDialectOptions_Defaults(t *testing.T) {
	opts, err := dialectOptions()
	require.NoError(t, err)
	assert.Equal(t, dialect.DefaultPrefix, opts.Prefix)
	assert.Equal(t, dialect.DefaultKeys, opts.Keys)
}

func TestDialectOptions_ConfiguredKeys(t *testing.T) {
	t.Cleanup(func() { viper.Set("schema.keys", nil) })
	viper.Set("schema.keys", []map[string]interface{}{{"column": "uid", "primary": true}})

	opts, err := dialectOptions()
	require.NoError(t, err)
	assert.Equal(t, []dialect.KeyIndex{{Column: "uid", Primary: true}}, opts.Keys)
}
