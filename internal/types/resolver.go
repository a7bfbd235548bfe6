// Package types maps raw type tokens from record definitions to canonical
// storage types.
//
// Resolution walks an ordered rule list and the first matching rule wins.
// Named rules come first ("varchar", "string:32", "long" ...), then the
// value-shape rules that look at what the token itself is (123, 1.5, is_int,
// "name" ...). Anything unmatched is text.
package types

import (
	"strconv"
	"strings"
)

// Canonical types understood by every dialect.
const (
	Int     = "int"
	Bigint  = "bigint"
	Tinyint = "tinyint"
	Float   = "float"
	Double  = "double"
	Varchar = "varchar"
	Char    = "char"
	Text    = "text"
)

// DefaultStringPrecision applies to the string family when nothing else does.
const DefaultStringPrecision = "100"

// Resolved is a canonical (type, precision) pair.
type Resolved struct {
	Type      string
	Precision string
}

// String renders "type" or "type(precision)".
func (r Resolved) String() string {
	if r.Precision == "" {
		return r.Type
	}
	return r.Type + "(" + r.Precision + ")"
}

// Rule is one entry of the resolution chain. Named rules may carry a
// precision of their own, written "name:precision" in the token.
type Rule struct {
	Name             string
	Match            func(base string) bool
	Type             string
	DefaultPrecision string
	Named            bool
}

func named(name, typ, precision string) Rule {
	return Rule{
		Name:             name,
		Match:            func(base string) bool { return strings.EqualFold(base, name) },
		Type:             typ,
		DefaultPrecision: precision,
		Named:            true,
	}
}

func shape(name, typ string, match func(string) bool) Rule {
	return Rule{Name: name, Match: match, Type: typ}
}

func predicate(name string) func(string) bool {
	return func(base string) bool { return strings.EqualFold(base, name) }
}

// Rules is the resolution chain in priority order.
var Rules = []Rule{
	named("varchar", Varchar, DefaultStringPrecision),
	named("char", Char, DefaultStringPrecision),
	named("bigint", Bigint, ""),
	named("int", Int, ""),
	named("tinyint", Tinyint, ""),
	named("string", Varchar, DefaultStringPrecision),
	named("text", Text, ""),
	named("float", Float, ""),
	named("double", Double, ""),
	named("long", Bigint, ""),

	shape("is_float", Float, predicate("is_float")),
	shape("is_double", Double, predicate("is_double")),
	shape("is_int", Int, predicate("is_int")),
	shape("is_numeric", Int, predicate("is_numeric")),
	shape("is_string", Text, predicate("is_string")),

	shape("int literal", Int, isIntLiteral),
	shape("float literal", Float, isFloatLiteral),
	shape("double literal", Double, isDoubleLiteral),
	shape("numeric", Int, isNumeric),
	shape("text", Text, func(string) bool { return true }),
}

// Resolve returns the canonical type for token. precision, when set, wins over
// any precision carried by the token or the rule. An empty token does not
// resolve.
func Resolve(token, precision string) (Resolved, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Resolved{}, false
	}
	base, own := SplitPrecision(token)

	for _, r := range Rules {
		if !r.Match(base) {
			continue
		}
		res := Resolved{Type: r.Type, Precision: precision}
		if r.Named && res.Precision == "" {
			res.Precision = own
			if res.Precision == "" {
				res.Precision = r.DefaultPrecision
			}
		}
		return res, true
	}
	return Resolved{}, false
}

// SplitPrecision splits "type:precision". The precision part is empty when
// absent.
func SplitPrecision(token string) (base, precision string) {
	i := strings.Index(token, ":")
	if i < 0 {
		return strings.TrimSpace(token), ""
	}
	return strings.TrimSpace(token[:i]), strings.TrimSpace(token[i+1:])
}

func isIntLiteral(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// startsNumeric rejects words strconv accepts, such as "inf" and "nan".
func startsNumeric(s string) bool {
	return s != "" && strings.ContainsRune("0123456789+-.", rune(s[0]))
}

func isDecimal(s string) bool {
	if !startsNumeric(s) || !strings.ContainsAny(s, ".eE") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// A decimal literal with at most 7 significant digits fits a float.
const floatDigits = 7

func isFloatLiteral(s string) bool {
	return isDecimal(s) && significantDigits(s) <= floatDigits
}

func isDoubleLiteral(s string) bool {
	return isDecimal(s) && significantDigits(s) > floatDigits
}

func isNumeric(s string) bool {
	if !startsNumeric(s) {
		return false
	}
	if _, err := strconv.ParseInt(s, 0, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return true
	}
	// integers past the int64 range
	digits := strings.TrimLeft(s, "+-")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func significantDigits(s string) int {
	s = strings.TrimLeft(s, "+-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.Replace(s, ".", "", 1)
	s = strings.TrimLeft(s, "0")
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
