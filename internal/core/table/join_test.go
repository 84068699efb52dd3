package table

import (
	"testing"

	"github.com/jobportal/admin-console/internal/core/domain"
)

func TestLookupName(t *testing.T) {
	refs := []domain.Category{
		{ID: 1, CategoryName: "IT"},
		{ID: 2, CategoryName: "Finance"},
	}
	idx := NameIndex(refs,
		func(c domain.Category) int64 { return c.ID },
		func(c domain.Category) string { return c.CategoryName },
	)

	if got := LookupName(idx, 2); got != "Finance" {
		t.Errorf("expected Finance, got %q", got)
	}
	if got := LookupName(idx, 99); got != domain.UnknownReference {
		t.Errorf("expected %q on a join miss, got %q", domain.UnknownReference, got)
	}
}
