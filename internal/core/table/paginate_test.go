package table

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name     string
		n        int
		pageSize int
		want     int
	}{
		{"empty collection still has one page", 0, 5, 1},
		{"exact multiple", 10, 5, 2},
		{"partial last page", 12, 5, 3},
		{"single item", 1, 5, 1},
		{"zero page size falls back to default", 12, 0, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TotalPages(tc.n, tc.pageSize); got != tc.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.n, tc.pageSize, got, tc.want)
			}
		})
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		totalPages int
		want       int
	}{
		{"within range", 2, 3, 2},
		{"below range", 0, 3, 1},
		{"negative", -4, 3, 1},
		{"above range clamps, no wraparound", 4, 3, 3},
		{"first page", 1, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampPage(tc.page, tc.totalPages); got != tc.want {
				t.Errorf("ClampPage(%d, %d) = %d, want %d", tc.page, tc.totalPages, got, tc.want)
			}
		})
	}
}

func TestPageSliceDistribution(t *testing.T) {
	items := make([]int, 12)
	for i := range items {
		items[i] = i + 1
	}

	// 12 records at 5 per page: 5, 5, 2.
	if got := PageSlice(items, 1, 5); len(got) != 5 || got[0] != 1 {
		t.Errorf("page 1: got %v", got)
	}
	if got := PageSlice(items, 2, 5); len(got) != 5 || got[0] != 6 {
		t.Errorf("page 2: got %v", got)
	}
	if got := PageSlice(items, 3, 5); len(got) != 2 || got[0] != 11 || got[1] != 12 {
		t.Errorf("page 3: got %v", got)
	}
}

func TestPageSliceOutOfRangeClampsToLast(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	got := PageSlice(items, 4, 5)

	if len(got) != 2 || got[0] != 11 {
		t.Errorf("expected page 4 to clamp to the last page [11 12], got %v", got)
	}
}

func TestPageSliceEmptyCollection(t *testing.T) {
	if got := PageSlice([]int(nil), 1, 5); len(got) != 0 {
		t.Errorf("expected empty page, got %v", got)
	}
}
