package gen

import (
	"regexp"
	"strings"
)

// Cast is the semantic category assigned to a column for casting and
// doc-block purposes, distinct from its raw database type string.
type Cast string

const (
	CastBoolean  Cast = "boolean"
	CastInt      Cast = "int"
	CastString   Cast = "string"
	CastFloat    Cast = "float"
	CastDouble   Cast = "double"
	CastDatetime Cast = "datetime"
	CastDate     Cast = "date"
)

// typePattern extracts the base type token and the optional
// length/precision arguments from a declaration like "int(11)".
var typePattern = regexp.MustCompile(`^([a-z]+)(?:\(([^)]*)\))?`)

// classify maps a raw column type declaration to its cast category.
// The declaration is lowercased and truncated at the first whitespace,
// which drops modifiers like "unsigned". isDate marks columns that
// belong in the date list. ok is false for types with no known
// category; such columns stay fillable but get no cast entry.
func classify(raw string) (c Cast, isDate, ok bool) {
	raw = strings.ToLower(raw)
	if i := strings.IndexAny(raw, " \t"); i >= 0 {
		raw = raw[:i]
	}
	m := typePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false, false
	}
	base, args := m[1], m[2]
	switch base {
	case "int", "tinyint", "boolean", "bool":
		if args == "1" {
			return CastBoolean, false, true
		}
		return CastInt, false, true
	case "varchar", "text", "tinytext", "mediumtext", "longtext":
		return CastString, false, true
	case "float", "double":
		return Cast(base), false, true
	case "timestamp":
		return CastInt, true, true
	case "datetime":
		return CastDatetime, true, true
	case "date":
		return CastDate, true, true
	}
	return "", false, false
}
