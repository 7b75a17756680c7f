package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/travel-approval/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPaginationParams(t *testing.T) {
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(nil, nil))
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, domain.NewPaginationParams(intPtr(0), intPtr(-5)))
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 100}, domain.NewPaginationParams(intPtr(3), intPtr(500)))
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, domain.PaginationParams{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, domain.PaginationParams{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, math.MaxInt, domain.PaginationParams{Page: math.MaxInt / 15, Limit: 20}.Offset())
}

func TestPaginationParams_Window(t *testing.T) {
	tests := []struct {
		name      string
		params    domain.PaginationParams
		total     int
		wantStart int
		wantEnd   int
	}{
		{"first page", domain.PaginationParams{Page: 1, Limit: 2}, 5, 0, 2},
		{"partial last page", domain.PaginationParams{Page: 3, Limit: 2}, 5, 4, 5},
		{"exactly past the end", domain.PaginationParams{Page: 4, Limit: 2}, 6, 6, 6},
		{"empty list", domain.PaginationParams{Page: 1, Limit: 20}, 0, 0, 0},
		{"page would overflow offset", domain.PaginationParams{Page: math.MaxInt / 15, Limit: 20}, 5, 5, 5},
		{"largest page", domain.PaginationParams{Page: math.MaxInt, Limit: 100}, 5, 5, 5},
		{"huge limit", domain.PaginationParams{Page: 2, Limit: math.MaxInt}, 5, 5, 5},
		{"zero-value params", domain.PaginationParams{}, 5, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start, end := tc.params.Window(tc.total)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
