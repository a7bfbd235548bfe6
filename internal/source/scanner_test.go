package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record2ddl/internal/source"
)

func feedAll(s *source.Scanner, lines ...string) []source.Statement {
	var out []source.Statement
	for _, l := range lines {
		if st, ok := s.Feed(l); ok {
			out = append(out, st)
		}
	}
	return out
}

func TestScanner_Classify(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		`-define(STATUS, "int").`,
		`-field(state, STATUS).`,
		`%% name; role name; varchar:32`,
		`# -define(IGNORED, 1).`,
		``,
		`some unrelated line`,
		`-record(player, {name = "", age = 0}).`,
	)

	require.Len(t, got, 4)
	assert.Equal(t, source.KindDefine, got[0].Kind)
	assert.Equal(t, source.KindField, got[1].Kind)
	assert.Equal(t, source.KindAnnotation, got[2].Kind)
	assert.Equal(t, source.KindRecord, got[3].Kind)
	assert.Equal(t, `record(player, {name = "", age = 0}).`, got[3].Text)
	assert.Equal(t, 7, got[3].Line)
}

func TestScanner_SingleLineWithoutParens(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s, "record player name=is_string, age=0")
	require.Len(t, got, 1)
	assert.Equal(t, source.Idle, s.State())
}

func TestScanner_AccumulatesMultiLine(t *testing.T) {
	single := source.NewScanner()
	one := feedAll(single, "record(player, {name=is_string, age=123})")
	require.Len(t, one, 1)

	multi := source.NewScanner()
	st, ok := multi.Feed("record(player, {")
	assert.False(t, ok)
	assert.Equal(t, source.Accumulating, multi.State())

	_, ok = multi.Feed("    name=is_string, % 角色名")
	assert.False(t, ok)

	st, ok = multi.Feed("    age=123})")
	require.True(t, ok)
	assert.Equal(t, source.Idle, multi.State())
	assert.Equal(t, source.KindRecord, st.Kind)
	assert.Equal(t, 1, st.Line)
	assert.Equal(t, "record(player, {name=is_string,age=123})", st.Text)
}

func TestScanner_AnnotationsWhileAccumulating(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		"-record(log, {",
		"%% mtime; time; int",
		"mtime = 0",
		"}).",
	)
	require.Len(t, got, 2)
	assert.Equal(t, source.KindAnnotation, got[0].Kind)
	assert.Equal(t, source.KindRecord, got[1].Kind)
	assert.NotContains(t, got[1].Text, "%%")
}

func TestScanner_NestedParens(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		"record(a, {x = f(",
		"1), y = 2",
		"})",
	)
	require.Len(t, got, 1)
	assert.Equal(t, "record(a, {x = f(1), y = 2})", got[0].Text)
}

func TestScanner_CloseUnterminated(t *testing.T) {
	s := source.NewScanner()
	feedAll(s, "", "record(broken, {", "x = 1")

	p, ok := s.Close()
	require.True(t, ok)
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, "record(broken, {x = 1", p.Text)
	assert.Equal(t, source.Idle, s.State())

	_, ok = s.Close()
	assert.False(t, ok)
}

func TestScanner_PercentInsideLiteral(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		`-record(a, {rate = "5%", b = 1}).`,
		`-record(b, {c = 1}).`,
	)

	require.Len(t, got, 2)
	assert.Equal(t, `record(a, {rate = "5%", b = 1}).`, got[0].Text)
	assert.Equal(t, `record(b, {c = 1}).`, got[1].Text)
	assert.Equal(t, source.Idle, s.State())

	_, ok := s.Close()
	assert.False(t, ok)
}

func TestScanner_TrailingCommentStripped(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		`record(a, {x = 1}). % 登录日志 (旧)`,
		`record(b, {`,
		`  tip = "100% 'ok'", % 提示`,
		`  y = 2}).`,
	)

	require.Len(t, got, 2)
	assert.Equal(t, "record(a, {x = 1}).", got[0].Text)
	assert.Equal(t, `record(b, {tip = "100% 'ok'",y = 2}).`, got[1].Text)
}

func TestScanner_AnnotationMentioningMacroKeyword(t *testing.T) {
	s := source.NewScanner()
	got := feedAll(s,
		"%% mode; pre-field mode; tinyint",
		"%% kind; see -define(KIND) list",
	)

	require.Len(t, got, 2)
	assert.Equal(t, source.KindAnnotation, got[0].Kind)
	assert.Equal(t, source.KindAnnotation, got[1].Kind)
}
