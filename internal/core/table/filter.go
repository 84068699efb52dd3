package table

import "strings"

// Filter returns the members of items whose configured fields contain query,
// case-insensitively. An empty query returns items itself (identity, no copy).
// Order is preserved; only membership changes. Empty field values simply do
// not match.
func Filter[T any](items []T, query string, fields []func(T) string) []T {
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
