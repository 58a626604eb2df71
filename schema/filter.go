package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultBlacklist is applied on top of any user blacklist.
var defaultBlacklist = []string{"migrations"}

// Filter decides which tables take part in generation. A table is
// included iff it matches at least one whitelist pattern and no
// blacklist pattern. An empty whitelist matches everything.
type Filter struct {
	include *regexp.Regexp
	exclude *regexp.Regexp
}

// NewFilter compiles whitelist and blacklist glob patterns into a
// Filter. The tables list is merged into the whitelist, so explicitly
// requested tables are always candidates. Each pattern's "*" matches
// zero or more characters, and patterns are anchored at the end: they
// match a trailing substring of the table name.
func NewFilter(whitelist, blacklist, tables []string) (*Filter, error) {
	f := &Filter{}
	include := append(append([]string{}, whitelist...), tables...)
	exclude := append(append([]string{}, defaultBlacklist...), blacklist...)
	if len(include) > 0 {
		re, err := compile(include)
		if err != nil {
			return nil, fmt.Errorf("schema: compile whitelist: %w", err)
		}
		f.include = re
	}
	re, err := compile(exclude)
	if err != nil {
		return nil, fmt.Errorf("schema: compile blacklist: %w", err)
	}
	f.exclude = re
	return f, nil
}

// Match reports whether the table participates in generation.
func (f *Filter) Match(table string) bool {
	if f.include != nil && !f.include.MatchString(table) {
		return false
	}
	return !f.exclude.MatchString(table)
}

// Tables returns the subset of rows whose table matches the filter,
// preserving row order.
func (f *Filter) Tables(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if f.Match(r.Table) {
			out = append(out, r)
		}
	}
	return out
}

func compile(patterns []string) (*regexp.Regexp, error) {
	alts := make([]string, len(patterns))
	for i, p := range patterns {
		segs := strings.Split(p, "*")
		for j, s := range segs {
			segs[j] = regexp.QuoteMeta(s)
		}
		alts[i] = strings.Join(segs, ".*")
	}
	return regexp.Compile("(?:" + strings.Join(alts, "|") + ")$")
}
