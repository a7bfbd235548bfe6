package macro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record2ddl/internal/macro"
)

func TestParseStatement(t *testing.T) {
	cases := []struct {
		line    string
		keyword string
		name    string
		value   string
	}{
		{`-define(STATUS, "int").`, macro.DefineKeyword, "STATUS", "int"},
		{`-define('NAME_TYPE', 'varchar:32').`, macro.DefineKeyword, "NAME_TYPE", "varchar:32"},
		{`-define(LEVEL，"tinyint").`, macro.DefineKeyword, "LEVEL", "tinyint"},
		{`  -DEFINE(MAX, 100).`, macro.DefineKeyword, "MAX", "100"},
		{`-field(state, "状态;int").`, macro.FieldKeyword, "state", "状态;int"},
		{`-field(gold, GOLD_TYPE).`, macro.FieldKeyword, "gold", "GOLD_TYPE"},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			name, value, ok := macro.ParseStatement(tc.line, tc.keyword)
			require.True(t, ok)
			assert.Equal(t, tc.name, name)
			assert.Equal(t, tc.value, value)
		})
	}

	_, _, ok := macro.ParseStatement("-define(BROKEN).", macro.DefineKeyword)
	assert.False(t, ok)
}

func TestResolve_Idempotent(t *testing.T) {
	tbl := macro.NewTable()
	tbl.Define("A", "x")
	tbl.Field("f", "A")
	tbl.Field("g", "remark;A")

	tbl.Resolve()
	v, _ := tbl.FieldValue("f")
	assert.Equal(t, "x", v)
	w, _ := tbl.FieldValue("g")
	assert.Equal(t, "remark;x", w)

	tbl.Resolve()
	v2, _ := tbl.FieldValue("f")
	w2, _ := tbl.FieldValue("g")
	assert.Equal(t, v, v2)
	assert.Equal(t, w, w2)
}

func TestResolveSelfReferences_OneLayer(t *testing.T) {
	tbl := macro.NewTable()
	tbl.Define("C", "int")
	tbl.Define("B", "C")
	tbl.Define("A", "B")

	tbl.ResolveSelfReferences()

	b, _ := tbl.DefineValue("B")
	a, _ := tbl.DefineValue("A")
	assert.Equal(t, "int", b)
	// A only sees B's value from before the pass
	assert.Equal(t, "C", a)
}

func TestApplyToFields_FirstSubstringWins(t *testing.T) {
	tbl := macro.NewTable()
	tbl.Define("TYPE", "int")
	tbl.Define("TYPE_LONG", "bigint")
	tbl.Field("x", "id;TYPE_LONG")

	tbl.ApplyToFields()

	v, _ := tbl.FieldValue("x")
	assert.Equal(t, "id;int_LONG", v)
}

func TestResolve_SkippedWithoutFields(t *testing.T) {
	tbl := macro.NewTable()
	tbl.Define("A", "B")
	tbl.Define("B", "int")

	tbl.Resolve()

	a, _ := tbl.DefineValue("A")
	assert.Equal(t, "B", a)
}

func TestSplitFieldValue(t *testing.T) {
	remark, hint := macro.SplitFieldValue("金币;BIGINT")
	assert.Equal(t, "金币", remark)
	assert.Equal(t, "bigint", hint)

	remark, hint = macro.SplitFieldValue("varchar:64")
	assert.Empty(t, remark)
	assert.Equal(t, "varchar:64", hint)

	remark, hint = macro.SplitFieldValue("only remark;")
	assert.Equal(t, "only remark", remark)
	assert.Empty(t, hint)
}
