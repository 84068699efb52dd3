package table

import "github.com/jobportal/admin-console/internal/core/domain"

// NameIndex builds a primary-key → display-name index over a reference
// collection, for resolving foreign keys into denormalized display fields.
func NameIndex[R any](refs []R, key func(R) int64, name func(R) string) map[int64]string {
	idx := make(map[int64]string, len(refs))
	for _, r := range refs {
		idx[key(r)] = name(r)
	}
	return idx
}

// LookupName resolves id against idx, falling back to the "Unknown"
// placeholder on a join miss. A miss is not an error.
func LookupName(idx map[int64]string, id int64) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return domain.UnknownReference
}
