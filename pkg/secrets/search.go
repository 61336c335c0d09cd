package secrets

import (
	"strings"
	"unicode"
)

// Normalize lowercases s and folds every dash to an underscore, so that
// "My-API" and "my_api" compare equal. It is applied to both query terms and
// paths before matching.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "-", "_")
}

// ParseFacets splits a raw query into normalized search terms. Runs of
// whitespace and commas, in any mix, act as term boundaries; consecutive
// separators produce no empty facets. An empty or all-separator query yields
// no facets.
func ParseFacets(query string) []string {
	terms := strings.FieldsFunc(query, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	facets := make([]string, 0, len(terms))
	for _, term := range terms {
		facets = append(facets, Normalize(term))
	}
	return facets
}

// MatchesAll reports whether every facet occurs as a substring of the
// normalized path. An empty facet list matches every path, which is the
// behavior when no query is supplied.
func MatchesAll(path string, facets []string) bool {
	normalized := Normalize(path)
	for _, facet := range facets {
		if !strings.Contains(normalized, facet) {
			return false
		}
	}
	return true
}
