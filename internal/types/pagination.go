package types

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination describes which slice of a collection a read should
// return. Zero values are normalized to the first page of the default
// size; out-of-range sizes are clamped into [1, MaxPageSize].
type Pagination struct {
	PageNumber int `json:"page_number" form:"pageNumber"`
	PageSize   int `json:"page_size" form:"pageSize"`
}

func (p Pagination) Normalized() Pagination {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Skip is the number of records preceding the requested page.
func (p Pagination) Skip() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Filter carries the ad-hoc predicates of a list read. SearchTerm is a
// case-insensitive substring match; Filters holds named field-specific
// predicates. All predicates compose with AND.
type Filter struct {
	SearchTerm string            `json:"search_term" form:"searchTerm"`
	SortBy     string            `json:"sort_by" form:"sortBy"`
	SortDesc   bool              `json:"sort_desc" form:"sortDesc"`
	Filters    map[string]string `json:"filters"`
}

// PageMeta is the pagination arithmetic attached to successful paged
// responses.
type PageMeta struct {
	PageNumber  int   `json:"page_number"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

func NewPageMeta(p Pagination, totalCount int64) PageMeta {
	p = p.Normalized()
	totalPages := int((totalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
	return PageMeta{
		PageNumber:  p.PageNumber,
		PageSize:    p.PageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		HasPrevious: p.PageNumber > 1,
		HasNext:     p.PageNumber < totalPages,
	}
}
