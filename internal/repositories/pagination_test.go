package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"zero values fall back", 0, 0, 1, 10},
		{"negative values fall back", -3, -1, 1, 10},
		{"valid values kept", 4, 25, 4, 25},
		{"page one limit one", 1, 1, 1, 1},
		{"mixed", 0, 5, 1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLimit, p.Limit)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 30, Pagination{Page: 7, Limit: 5}.Offset())
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 4, TotalPages(37, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
