package repositories

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination holds normalized 1-based paging values.
type Pagination struct {
	Page  int
	Limit int
}

// NormalizePagination clamps paging input to the defaults. Any value
// below 1 (including the zero produced by non-numeric query input)
// falls back to page=1, limit=10.
func NormalizePagination(page, limit int) Pagination {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Pagination{Page: page, Limit: limit}
}

// Offset converts the 1-based page into a row offset.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
