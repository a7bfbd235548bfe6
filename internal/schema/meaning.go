package schema

import "strings"

var abbreviations = map[string]string{
	// Common nouns in game records
	"nm": "name", "nick": "name", "lv": "level", "lvl": "level",
	"exp": "experience", "xp": "experience", "hp": "health", "mp": "mana",
	"atk": "attack", "def": "defense", "cnt": "count", "num": "count",
	"qty": "count", "amt": "amount", "ip": "ip", "acc": "account",
	"msg": "message", "txt": "text", "desc": "description", "tit": "title",
	"rid": "id", "pid": "id", "uid": "id", "aid": "id", "sid": "id",
	"gid": "id", "cfg": "config", "pos": "position", "idx": "index",
	"seq": "sequence", "vip": "vip",

	// Time stamps
	"mtime": "time", "ctime": "time", "atime": "time", "ts": "time",
	"dt": "date", "tm": "time",

	// Flags / status
	"is": "yesno", "flg": "flag", "flag": "yesno", "stat": "status",
	"sts": "status", "typ": "type", "kind": "type",
}

// AnalyzeMeaning guesses what a field holds from its name and comment. The
// result drives sample data generation.
func AnalyzeMeaning(fieldName, comment string) string {
	c := strings.ToLower(comment)
	n := strings.ToLower(fieldName)

	// 1. Comment keywords (Chinese/English) come first
	if strings.Contains(c, "时间") || strings.Contains(c, "time") || strings.Contains(c, "日期") || strings.Contains(c, "date") {
		return "time"
	}
	if strings.Contains(c, "名字") || strings.Contains(c, "名称") || strings.Contains(c, "昵称") || strings.Contains(c, "name") {
		return "name"
	}
	if strings.Contains(c, "等级") || strings.Contains(c, "level") {
		return "level"
	}
	if strings.Contains(c, "金币") || strings.Contains(c, "元宝") || strings.Contains(c, "钻石") ||
		strings.Contains(c, "gold") || strings.Contains(c, "diamond") || strings.Contains(c, "coin") {
		return "amount"
	}
	if strings.Contains(c, "数量") || strings.Contains(c, "次数") || strings.Contains(c, "count") {
		return "count"
	}
	if strings.Contains(c, "是否") || strings.Contains(c, "flag") {
		return "yesno"
	}
	if strings.Contains(c, "描述") || strings.Contains(c, "说明") || strings.Contains(c, "desc") {
		return "description"
	}
	if strings.HasPrefix(c, "ip") || strings.Contains(c, "ip地址") {
		return "ip"
	}

	// 2. Abbreviation analysis of the field name
	parts := strings.Split(n, "_")
	var decoded []string
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decoded = append(decoded, full)
		} else {
			decoded = append(decoded, part)
		}
	}
	return strings.Join(decoded, " ")
}
