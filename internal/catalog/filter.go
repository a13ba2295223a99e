package catalog

import "strings"

// Filter returns the products matching the search term and category facet,
// in catalog order. The term matches product names case-insensitively;
// CategoryAll (or the empty string) skips the facet. Pure: the input slice is
// never modified and the same inputs always yield the same output.
func Filter(products []Product, term string, category Category) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}
