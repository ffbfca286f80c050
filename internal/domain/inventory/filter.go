package inventory

import (
	"sort"
	"strings"
)

// Filter narrows items by an exact category match and a case-insensitive
// free-text query over name, category, sku and description. Either filter
// may be empty, in which case it matches everything. Original order is
// preserved; there is no ranking.
func Filter(items []Item, query, category string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	matched := make([]Item, 0, len(items))
	for _, it := range items {
		if category != "" && strings.TrimSpace(it.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(it, query) {
			continue
		}
		matched = append(matched, it)
	}
	return matched
}

// matchesQuery reports whether the lowercased query is a substring of the
// item's searchable text.
func matchesQuery(it Item, query string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		it.Name,
		it.Category,
		it.SKU,
		it.Description,
	}, " "))
	return strings.Contains(haystack, query)
}

// FilterColumn retains only items whose x-coordinate equals col. It is
// applied as a second pass after Filter when a column is selected.
func FilterColumn(items []Item, col int) []Item {
	matched := make([]Item, 0, len(items))
	for _, it := range items {
		if it.X == col {
			matched = append(matched, it)
		}
	}
	return matched
}

// Categories returns the sorted set of unique non-empty category names.
func Categories(items []Item) []string {
	seen := make(map[string]struct{})
	for _, it := range items {
		cat := strings.TrimSpace(it.Category)
		if cat == "" {
			continue
		}
		seen[cat] = struct{}{}
	}
	cats := make([]string, 0, len(seen))
	for cat := range seen {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}
