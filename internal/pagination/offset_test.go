package pagination

import "testing"

func TestOffsetPageMath(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalCount int
		wantOffset int
		wantPages  int
	}{
		{"first page", 1, 25, 0, 2},
		{"second page", 2, 25, 20, 2},
		{"beyond last page", 3, 25, 40, 2},
		{"exact multiple", 2, 40, 20, 2},
		{"single short page", 1, 5, 0, 1},
		{"empty collection", 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewOffsetPage(tt.page, PostPageSize)
			if got := p.Offset(); got != tt.wantOffset {
				t.Fatalf("offset = %d, want %d", got, tt.wantOffset)
			}
			if got := p.TotalPages(tt.totalCount); got != tt.wantPages {
				t.Fatalf("totalPages = %d, want %d", got, tt.wantPages)
			}
		})
	}
}

func TestNewOffsetPageClampsPage(t *testing.T) {
	for _, page := range []int{0, -1, -100} {
		p := NewOffsetPage(page, PostPageSize)
		if p.Page != 1 {
			t.Fatalf("page %d should clamp to 1, got %d", page, p.Page)
		}
		if p.Offset() != 0 {
			t.Fatalf("clamped page should have offset 0, got %d", p.Offset())
		}
	}
}
