package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"record2ddl/internal/schema"
)

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

var engKeys []string

func init() {
	for k := range EngToChnMap {
		engKeys = append(engKeys, k)
	}
}

// 1. 영문 텍스트 생성 (사전에 있는 단어 위주로)
func generateEnglishText(wordCount int) string {
	var words []string
	for i := 0; i < wordCount; i++ {
		words = append(words, engKeys[seededRand.Intn(len(engKeys))])
	}
	return strings.Join(words, " ")
}

// 2. 번역 함수 (영 -> 중)
func translate(text string) string {
	var result []string
	for _, w := range strings.Split(text, " ") {
		if val, ok := EngToChnMap[w]; ok {
			result = append(result, val)
		} else {
			result = append(result, w)
		}
	}
	return strings.Join(result, "")
}

func GenerateRoleName() string {
	return Surnames[seededRand.Intn(len(Surnames))] + GivenNames[seededRand.Intn(len(GivenNames))]
}

func GenerateNickname() string {
	return fmt.Sprintf("%s%s%d",
		NickPrefixes[seededRand.Intn(len(NickPrefixes))],
		NickSuffixes[seededRand.Intn(len(NickSuffixes))],
		seededRand.Intn(1000))
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// GenerateValue generates a random value for a compiled column. index is the
// 0-based row number; primary key columns use it to stay unique.
func GenerateValue(col *schema.Column, tableName string, index int, primary bool) interface{} {
	colName := strings.ToLower(col.Name)
	meaning := col.Meaning

	// 0. 기본 시스템 컬럼
	switch colName {
	case "agent_id":
		return gofakeit.Number(1, 20)
	case "server_id":
		return gofakeit.Number(1, 200)
	}

	// 1. 문자열 타입 (Meaning 분석 우선)
	if col.IsString() {
		limit := col.Length()
		if primary {
			return truncate(fmt.Sprintf("%s_%d", tableName, index+1), limit)
		}
		switch {
		case meaning == "ip" || colName == "ip" || strings.HasSuffix(colName, "_ip"):
			return truncate(gofakeit.IPv4Address(), limit)
		case strings.Contains(meaning, "time") || strings.Contains(meaning, "date"):
			return truncate(randomTime().Format("2006-01-02 15:04:05"), limit)
		case strings.Contains(colName, "account") || strings.Contains(meaning, "account"):
			return truncate(gofakeit.Username(), limit)
		case strings.Contains(colName, "nick"):
			return truncate(GenerateNickname(), limit)
		case strings.Contains(meaning, "name"):
			return truncate(GenerateRoleName(), limit)
		case strings.Contains(colName, "channel"):
			return truncate(Channels[seededRand.Intn(len(Channels))], limit)
		case strings.Contains(colName, "device") || strings.Contains(colName, "model"):
			return truncate(Devices[seededRand.Intn(len(Devices))], limit)
		case strings.Contains(meaning, "yesno"):
			if seededRand.Intn(2) == 0 {
				return "Y"
			}
			return "N"
		case strings.Contains(meaning, "title"):
			return truncate(translate(generateEnglishText(2)), limit)
		case strings.Contains(meaning, "description") || strings.Contains(meaning, "message") ||
			strings.Contains(meaning, "text") || col.Type == "text":
			return truncate(translate(generateEnglishText(6)), limit)
		}
		if limit > 0 && limit < 20 {
			return truncate(translate(generateEnglishText(1)), limit)
		}
		return truncate(translate(generateEnglishText(3)), limit)
	}

	// 2. 숫자 타입
	switch col.Type {
	case "int", "bigint", "tinyint":
		if primary {
			return index + 1
		}
		if strings.Contains(meaning, "yesno") {
			return seededRand.Intn(2)
		}
		if col.Type == "tinyint" {
			return gofakeit.Number(0, 127)
		}
		if strings.Contains(meaning, "time") || strings.Contains(meaning, "date") {
			return randomTime().Unix()
		}
		if strings.Contains(meaning, "level") {
			return gofakeit.Number(1, 100)
		}
		if strings.Contains(meaning, "amount") || strings.Contains(meaning, "experience") {
			return gofakeit.Number(0, 1000000)
		}
		if strings.Contains(meaning, "count") {
			return gofakeit.Number(0, 999)
		}
		if col.Type == "bigint" {
			return gofakeit.Int64()&0xffffffffff + 1
		}
		return gofakeit.Number(1, 50000)

	case "float", "double":
		return gofakeit.Price(0.99, 999.99)
	}

	return nil
}

// 최근 1년 사이 임의 시각
func randomTime() time.Time {
	return gofakeit.DateRange(time.Now().AddDate(-1, 0, 0), time.Now())
}
