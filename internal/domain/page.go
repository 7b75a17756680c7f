package domain

import "math"

// PaginationParams carries page/limit values from the HTTP layer to the service layer.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	Page  int
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to page=1, limit=20.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = min(*limit, 100)
	}
	return p
}

// Offset returns the zero-based index of the first item on the page,
// saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	skip := max(p.Page-1, 0)
	if p.Limit < 1 || skip == 0 {
		return 0
	}
	if skip > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return skip * p.Limit
}

// Window returns the [start, end) slice bounds of this page within a list of
// total items. A page past the end yields an empty window.
func (p PaginationParams) Window(total int) (start, end int) {
	if total <= 0 || p.Limit < 1 {
		return 0, 0
	}
	if max(p.Page-1, 0) > (total-1)/p.Limit {
		return total, total
	}
	start = p.Offset()
	end = total
	if p.Limit < total-start {
		end = start + p.Limit
	}
	return start, end
}

// ProfilePage is one page of saved profiles plus the total count.
type ProfilePage struct {
	Items []TravelProfile `json:"items"`
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
