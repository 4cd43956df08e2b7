package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/realista-backend/internal/types"
)

// reservedQueryKeys are list-request parameters with fixed meaning;
// every other query parameter becomes a named filter.
var reservedQueryKeys = map[string]bool{
	"pageNumber": true,
	"pageSize":   true,
	"searchTerm": true,
	"sortBy":     true,
	"sortDesc":   true,
}

// parseListQuery reads pagination, search, sort, and named filters out
// of the query string. Unparsable pagination values fall back to the
// defaults rather than failing the request.
func parseListQuery(c *gin.Context) (types.Pagination, types.Filter) {
	p := types.Pagination{
		PageNumber: atoiDefault(c.Query("pageNumber"), 1),
		PageSize:   atoiDefault(c.Query("pageSize"), types.DefaultPageSize),
	}.Normalized()

	f := types.Filter{
		SearchTerm: c.Query("searchTerm"),
		SortBy:     c.Query("sortBy"),
		SortDesc:   boolQuery(c.Query("sortDesc")),
	}
	for key, vals := range c.Request.URL.Query() {
		if reservedQueryKeys[key] || len(vals) == 0 {
			continue
		}
		if f.Filters == nil {
			f.Filters = make(map[string]string)
		}
		f.Filters[key] = vals[0]
	}
	return p, f
}

// boolQuery accepts every strconv.ParseBool spelling (1, t, True, ...);
// anything else, including absence, is false.
func boolQuery(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
