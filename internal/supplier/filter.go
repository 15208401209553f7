package supplier

// filter.go — search predicate over the supplier collection.

import "strings"

// Filter returns the suppliers matching query. The query is split on
// whitespace; a supplier matches iff every token is a case-insensitive
// substring of "name location". An empty query matches everything.
//
// The result is always a subset of suppliers in the original order; the
// input is never modified.
func Filter(suppliers []Supplier, query string) []Supplier {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		out := make([]Supplier, len(suppliers))
		copy(out, suppliers)
		return out
	}

	var out []Supplier
	for _, s := range suppliers {
		haystack := strings.ToLower(s.Name + " " + s.Location)
		if matchesAll(haystack, tokens) {
			out = append(out, s)
		}
	}
	return out
}

// matchesAll reports whether every token is a substring of haystack.
func matchesAll(haystack string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}
