package types

import "testing"

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Pagination
		want Pagination
	}{
		{"zero value", Pagination{}, Pagination{PageNumber: 1, PageSize: DefaultPageSize}},
		{"negative page", Pagination{PageNumber: -3, PageSize: 20}, Pagination{PageNumber: 1, PageSize: 20}},
		{"zero size", Pagination{PageNumber: 2}, Pagination{PageNumber: 2, PageSize: DefaultPageSize}},
		{"oversized", Pagination{PageNumber: 1, PageSize: 500}, Pagination{PageNumber: 1, PageSize: MaxPageSize}},
		{"in range", Pagination{PageNumber: 4, PageSize: 25}, Pagination{PageNumber: 4, PageSize: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalized(); got != tt.want {
				t.Fatalf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSkip(t *testing.T) {
	p := Pagination{PageNumber: 3, PageSize: 10}
	if got := p.Skip(); got != 20 {
		t.Fatalf("Skip() = %d, want 20", got)
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name        string
		p           Pagination
		total       int64
		wantPages   int
		wantHasPrev bool
		wantHasNext bool
	}{
		{"empty collection", Pagination{PageNumber: 1, PageSize: 10}, 0, 0, false, false},
		{"exact multiple", Pagination{PageNumber: 1, PageSize: 10}, 20, 2, false, true},
		{"partial last page", Pagination{PageNumber: 1, PageSize: 10}, 21, 3, false, true},
		{"last page", Pagination{PageNumber: 3, PageSize: 10}, 21, 3, true, false},
		{"middle page", Pagination{PageNumber: 2, PageSize: 10}, 35, 4, true, true},
		{"page past the end", Pagination{PageNumber: 9, PageSize: 10}, 21, 3, true, false},
		{"single record", Pagination{PageNumber: 1, PageSize: 10}, 1, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.p, tt.total)
			if meta.TotalPages != tt.wantPages {
				t.Fatalf("TotalPages = %d, want %d", meta.TotalPages, tt.wantPages)
			}
			if meta.TotalCount != tt.total {
				t.Fatalf("TotalCount = %d, want %d", meta.TotalCount, tt.total)
			}
			if meta.HasPrevious != tt.wantHasPrev {
				t.Fatalf("HasPrevious = %v, want %v", meta.HasPrevious, tt.wantHasPrev)
			}
			if meta.HasNext != tt.wantHasNext {
				t.Fatalf("HasNext = %v, want %v", meta.HasNext, tt.wantHasNext)
			}
		})
	}
}

// TotalPages must equal the ceiling of total/size for every size.
func TestNewPageMetaCeiling(t *testing.T) {
	const total = 137
	for size := 1; size <= MaxPageSize; size++ {
		meta := NewPageMeta(Pagination{PageNumber: 1, PageSize: size}, total)
		want := total / size
		if total%size != 0 {
			want++
		}
		if meta.TotalPages != want {
			t.Fatalf("size %d: TotalPages = %d, want %d", size, meta.TotalPages, want)
		}
	}
}
