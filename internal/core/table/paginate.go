package table

// DefaultPageSize matches the fixed row count of the admin table screens.
const DefaultPageSize = 5

// TotalPages returns the number of pages needed for n items, never less
// than 1 so an empty collection still renders a single "no records" page.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages]. Out-of-range requests are
// clamped, never wrapped.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the items visible on the given 1-based page.
func PageSlice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = ClampPage(page, TotalPages(len(items), pageSize))

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
