package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record2ddl/internal/dialect"
	"record2ddl/internal/engine"
	"record2ddl/internal/schema"
)

func TestGenerateValue_RespectsPrecision(t *testing.T) {
	col := &schema.Column{Name: "remark", Type: "varchar", Precision: "5", Meaning: "description"}
	for i := 0; i < 50; i++ {
		v, ok := engine.GenerateValue(col, "t", i, false).(string)
		require.True(t, ok)
		assert.LessOrEqual(t, len([]rune(v)), 5)
	}
}

func TestGenerateValue_PrimarySequential(t *testing.T) {
	col := &schema.Column{Name: "pid", Type: "bigint"}
	assert.Equal(t, 1, engine.GenerateValue(col, "t", 0, true))
	assert.Equal(t, 8, engine.GenerateValue(col, "t", 7, true))

	str := &schema.Column{Name: "code", Type: "varchar", Precision: "100"}
	assert.Equal(t, "player_3", engine.GenerateValue(str, "player", 2, true))
}

func TestGenerateValue_ByType(t *testing.T) {
	cases := []struct {
		col  *schema.Column
		kind string
	}{
		{&schema.Column{Name: "lv", Type: "int", Meaning: "level"}, "int"},
		{&schema.Column{Name: "flag", Type: "tinyint"}, "int"},
		{&schema.Column{Name: "gold", Type: "bigint", Meaning: "gold"}, "int64"},
		{&schema.Column{Name: "rate", Type: "float"}, "float64"},
		{&schema.Column{Name: "ratio", Type: "double"}, "float64"},
		{&schema.Column{Name: "ip", Type: "varchar", Precision: "15", Meaning: "ip"}, "string"},
		{&schema.Column{Name: "mtime", Type: "int", Meaning: "time"}, "int64"},
	}
	for _, tc := range cases {
		t.Run(tc.col.Name, func(t *testing.T) {
			v := engine.GenerateValue(tc.col, "t", 0, false)
			switch tc.kind {
			case "int":
				assert.IsType(t, 0, v)
			case "int64":
				assert.IsType(t, int64(0), v)
			case "float64":
				assert.IsType(t, float64(0), v)
			case "string":
				assert.IsType(t, "", v)
			}
		})
	}
}

func TestSampleScript(t *testing.T) {
	tbl := &schema.Table{Name: "player", Columns: []*schema.Column{
		{Name: "pid", Type: "bigint"},
		{Name: "name", Type: "varchar", Precision: "32", Meaning: "name"},
	}}
	opts := dialect.Options{Prefix: "t_", Keys: dialect.DefaultKeys}

	script := engine.SampleScript(dialect.GetDialect("mysql"), []*schema.Table{tbl}, opts, 3)
	lines := strings.Split(strings.TrimSpace(script), "\n")

	require.Len(t, lines, 3)
	for i, l := range lines {
		assert.True(t, strings.HasPrefix(l, "INSERT INTO `t_player` (`pid`, `name`) VALUES ("), l)
		assert.Contains(t, l, "VALUES ("+string(rune('1'+i))+", '")
		assert.True(t, strings.HasSuffix(l, "');"))
	}
}

func TestSampleRows(t *testing.T) {
	tbl := &schema.Table{Name: "x", Columns: []*schema.Column{
		{Name: "pid", Type: "bigint"},
		{Name: "agent_id", Type: "int"},
	}}
	rows := engine.SampleRows(tbl, dialect.DefaultKeys, 4)
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.Equal(t, i+1, r[0])
		assert.Len(t, r, 2)
	}
}
