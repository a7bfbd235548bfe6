package dialect_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record2ddl/internal/dialect"
	"record2ddl/internal/schema"
)

func playerTable() *schema.Table {
	return &schema.Table{
		Name:    "player",
		Comment: "玩家's table",
		Columns: []*schema.Column{
			{Name: "pid", Type: "bigint", Comment: "PID"},
			{Name: "agent_id", Type: "int", Comment: "agent ID"},
			{Name: "server_id", Type: "int", Comment: "server ID"},
			{Name: "name", Type: "varchar", Precision: "32", Comment: "角色名"},
			{Name: "role_id", Type: "bigint"},
			{Name: "desc", Type: "text"},
		},
	}
}

var opts = dialect.Options{Prefix: "t_", Database: "ods_game", Keys: dialect.DefaultKeys}

func TestMysql_CreateTable(t *testing.T) {
	d := dialect.GetDialect("mysql")
	stmts := d.CreateTable(playerTable(), opts)
	require.Len(t, stmts, 1)

	want := "CREATE TABLE IF NOT EXISTS `t_player` (\n" +
		"  `pid` BIGINT NOT NULL COMMENT 'PID',\n" +
		"  `agent_id` INT NOT NULL COMMENT 'agent ID',\n" +
		"  `server_id` INT NOT NULL COMMENT 'server ID',\n" +
		"  `name` VARCHAR(32) NOT NULL COMMENT '角色名',\n" +
		"  `role_id` BIGINT NOT NULL COMMENT '',\n" +
		"  `desc` TEXT NOT NULL COMMENT '',\n" +
		"  PRIMARY KEY (`pid`),\n" +
		"  KEY `role_id`(`role_id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COMMENT='玩家''s table'"
	assert.Equal(t, want, stmts[0])
}

func TestHive_CreateTable(t *testing.T) {
	d := dialect.GetDialect("hive")
	stmts := d.CreateTable(playerTable(), opts)
	require.Len(t, stmts, 1)

	want := "CREATE EXTERNAL TABLE IF NOT EXISTS ods_game.t_player (\n" +
		"  pid BIGINT COMMENT 'PID',\n" +
		"  agent_id INT COMMENT 'agent ID',\n" +
		"  server_id INT COMMENT 'server ID',\n" +
		"  name STRING COMMENT '角色名',\n" +
		"  role_id BIGINT COMMENT '',\n" +
		"  desc STRING COMMENT ''\n" +
		")\n" +
		"  COMMENT '玩家''s table'\n" +
		"PARTITIONED BY (\n" +
		"  sdt STRING COMMENT 'server-side daily partition, format yyyy-MM-dd'\n" +
		")\n" +
		"ROW FORMAT DELIMITED FIELDS TERMINATED BY '\\t'\n" +
		"STORED AS TEXTFILE"
	assert.Equal(t, want, stmts[0])
}

func TestHive_NoDatabase(t *testing.T) {
	d := dialect.GetDialect("hive")
	assert.Equal(t, "t_player", d.TableName(playerTable(), dialect.Options{Prefix: "t_"}))
}

func TestPostgres_CreateTable(t *testing.T) {
	d := dialect.GetDialect("postgres")
	stmts := d.CreateTable(playerTable(), opts)

	require.NotEmpty(t, stmts)
	assert.Contains(t, stmts[0], `CREATE TABLE IF NOT EXISTS "t_player" (`)
	assert.Contains(t, stmts[0], `"name" VARCHAR(32) NOT NULL`)
	assert.Contains(t, stmts[0], `"desc" TEXT NOT NULL`)
	assert.Contains(t, stmts[0], `PRIMARY KEY ("pid")`)
	assert.Contains(t, stmts, `COMMENT ON TABLE "t_player" IS '玩家''s table'`)
	assert.Contains(t, stmts, `COMMENT ON COLUMN "t_player"."name" IS '角色名'`)
	assert.Contains(t, stmts, `CREATE INDEX IF NOT EXISTS "t_player_role_id" ON "t_player" ("role_id")`)
	for _, s := range stmts {
		assert.NotContains(t, s, `"role_id" IS`, "empty comments are skipped")
	}
}

func TestMSSQL_CreateTable(t *testing.T) {
	d := dialect.GetDialect("mssql")
	stmts := d.CreateTable(playerTable(), opts)

	require.Len(t, stmts, 3)
	assert.True(t, strings.HasPrefix(stmts[0], "IF OBJECT_ID(N'dbo.t_player', N'U') IS NULL\nCREATE TABLE [dbo].[t_player] ("))
	assert.Contains(t, stmts[0], "[name] NVARCHAR(32) NOT NULL")
	assert.Contains(t, stmts[0], "[desc] NVARCHAR(MAX) NOT NULL")
	assert.Contains(t, stmts[0], "CONSTRAINT [PK_t_player] PRIMARY KEY ([pid])")
	assert.Contains(t, stmts[1], "CREATE INDEX [IX_t_player_role_id] ON [dbo].[t_player] ([role_id])")
	assert.Contains(t, stmts[2], "@value = N'玩家''s table'")
}

func TestOracle_CreateTable(t *testing.T) {
	d := dialect.GetDialect("oracle")
	stmts := d.CreateTable(playerTable(), opts)

	assert.Contains(t, stmts[0], "CREATE TABLE t_player (")
	assert.Contains(t, stmts[0], "pid NUMBER(19) NOT NULL")
	assert.Contains(t, stmts[0], "name VARCHAR2(32) NOT NULL")
	assert.Contains(t, stmts[0], "desc CLOB NOT NULL")
	assert.Contains(t, stmts[0], "CONSTRAINT pk_t_player PRIMARY KEY (pid)")
	assert.Contains(t, stmts, "CREATE INDEX ix_t_player_role_id ON t_player (role_id)")
}

func TestKeys_OnlyPresentColumns(t *testing.T) {
	tbl := &schema.Table{Name: "log", Columns: []*schema.Column{{Name: "mtime", Type: "int"}}}
	stmt := dialect.GetDialect("mysql").CreateTable(tbl, opts)[0]

	assert.NotContains(t, stmt, "PRIMARY KEY")
	assert.Contains(t, stmt, "KEY `mtime`(`mtime`)")
}

func TestColumnOrderMatchesAcrossDialects(t *testing.T) {
	tbl := playerTable()
	for _, name := range []string{"mysql", "hive"} {
		stmt := dialect.GetDialect(name).CreateTable(tbl, opts)[0]
		last := -1
		for _, c := range tbl.Columns {
			needle := c.Name + " "
			if name == "mysql" {
				needle = "`" + c.Name + "` "
			}
			idx := strings.Index(stmt, needle)
			require.Greater(t, idx, last, "%s: column %s out of order", name, c.Name)
			assert.Equal(t, 1, strings.Count(stmt, "\n  "+needle), "%s: column %s", name, c.Name)
			last = idx
		}
	}
}

func TestQueries(t *testing.T) {
	cases := []struct {
		dialect string
		insert  string
		trunc   string
	}{
		{"mysql", "INSERT IGNORE INTO t (`a`, `b`) VALUES (?, ?)", "TRUNCATE TABLE t"},
		{"postgres", `INSERT INTO t ("a", "b") VALUES ($1, $2) ON CONFLICT DO NOTHING`, "TRUNCATE TABLE t CASCADE"},
		{"sqlserver", "INSERT INTO t ([a], [b]) VALUES (@p1, @p2)", "DELETE FROM t"},
		{"oracle", "INSERT INTO t (a, b) VALUES (:1, :2)", "TRUNCATE TABLE t"},
	}
	for _, tc := range cases {
		t.Run(tc.dialect, func(t *testing.T) {
			d := dialect.GetDialect(tc.dialect)
			assert.Equal(t, tc.insert, d.InsertQuery("t", []string{"a", "b"}))
			assert.Equal(t, tc.trunc, d.TruncateQuery("t"))
		})
	}
}

func TestGetDialect(t *testing.T) {
	assert.Equal(t, "mysql", dialect.GetDialect("unknown").Name())
	assert.True(t, dialect.Supported("hive"))
	assert.False(t, dialect.Supported("sqlite"))
	assert.Contains(t, dialect.Names(), "oracle")
}

func TestInsertStatement(t *testing.T) {
	d := dialect.GetDialect("mysql")
	got := dialect.InsertStatement(d, "`t_x`", []string{"a", "b", "c"}, []interface{}{1, "it's", nil})
	assert.Equal(t, "INSERT INTO `t_x` (`a`, `b`, `c`) VALUES (1, 'it''s', NULL)", got)
}
