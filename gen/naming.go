package gen

import (
	"regexp"
	"strings"

	"github.com/go-openapi/inflect"
)

var delimiters = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Studly converts a table name to its PascalCase class form: each
// delimiter-separated segment is capitalized and the delimiters are
// removed. Any non-alphanumeric run counts as a delimiter.
func Studly(name string) string {
	name = strings.Trim(delimiters.ReplaceAllString(name, "_"), "_")
	return inflect.Camelize(name)
}

// Singular converts a class name to its singular grammatical form,
// e.g. UserProfiles to UserProfile.
func Singular(name string) string {
	return inflect.Singularize(name)
}

// namespaceFor derives a namespace from a folder path by trimming
// leading path noise and replacing path separators with the namespace
// separator.
func namespaceFor(folder string) string {
	folder = strings.TrimPrefix(folder, "./")
	folder = strings.Trim(folder, `/\`)
	return namespaceSeparators(folder)
}

// namespaceSeparators normalizes folder separators in a namespace.
func namespaceSeparators(ns string) string {
	return strings.ReplaceAll(ns, "/", `\`)
}
