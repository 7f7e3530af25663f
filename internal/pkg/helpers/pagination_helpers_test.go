package helpers

import "testing"

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{"first page", 1, 10, 0, 10},
		{"third page", 3, 20, 40, 20},
		{"zero size defaults", 1, 0, 0, DefaultPageSize},
		{"oversized capped", 2, 500, 100, MaxPageSize},
		{"zero page defaults", 0, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Errorf("got offset %d limit %d, want %d %d", offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(42, 2, 10)
	if info.TotalPages != 5 {
		t.Errorf("TotalPages = %d, want 5", info.TotalPages)
	}
	if info.CurrentPage != 2 || info.PageSize != 10 || info.TotalItems != 42 {
		t.Errorf("unexpected info: %+v", info)
	}

	// Past-the-end pages clamp to the last page.
	info = NewPaginationInfo(5, 9, 10)
	if info.CurrentPage != 1 {
		t.Errorf("CurrentPage = %d, want 1", info.CurrentPage)
	}

	// An empty result set still reports one page.
	info = NewPaginationInfo(0, 1, 10)
	if info.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want 1", info.TotalPages)
	}

	info = NewPaginationInfo(10, 1, 1000)
	if info.PageSize != MaxPageSize {
		t.Errorf("PageSize = %d, want %d", info.PageSize, MaxPageSize)
	}
}
