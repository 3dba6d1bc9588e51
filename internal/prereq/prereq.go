// Package prereq reads and rewrites the focus identifiers referenced by
// prerequisite and mutual-exclusion expressions such as
// "= { focus = A focus = B }".
//
// Expressions are never rejected: text that does not match the reference
// pattern simply contributes no identifiers.
package prereq

import (
	"regexp"
	"sort"
)

var referencePattern = regexp.MustCompile(`focus\s*=\s*([A-Za-z0-9_]+)`)

// Set is an unordered set of focus identifiers.
type Set map[string]struct{}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the identifiers in lexicographic order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ExtractIDs returns every identifier referenced by expr.
func ExtractIDs(expr string) Set {
	ids := make(Set)
	for _, m := range referencePattern.FindAllStringSubmatch(expr, -1) {
		ids[m[1]] = struct{}{}
	}
	return ids
}

// ExtractAll merges the identifiers referenced by every expression.
func ExtractAll(exprs []string) Set {
	ids := make(Set)
	for _, expr := range exprs {
		for id := range ExtractIDs(expr) {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// RewriteIDs returns expr with every referenced identifier replaced by
// rewrite(id). Everything else in the expression is preserved.
func RewriteIDs(expr string, rewrite func(id string) string) string {
	return referencePattern.ReplaceAllStringFunc(expr, func(match string) string {
		loc := referencePattern.FindStringSubmatchIndex(match)
		return match[:loc[2]] + rewrite(match[loc[2]:loc[3]])
	})
}
