// Package listview is the shared filter+paginate view model the admin list
// screens derive from a fixed in-memory snapshot of records. One generic
// implementation serves every screen; it performs no storage access.
package listview

import "strings"

// windowThreshold is the page count at or below which every page number is
// shown without ellipsis collapse.
const windowThreshold = 5

// PageRef is one entry of the page-number window shown to the user: either
// a page number or an ellipsis placeholder.
type PageRef struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Matcher reports whether an item matches a search query.
type Matcher[T any] func(item T, query string) bool

// FieldMatcher builds a Matcher over a fixed set of string fields: an item
// matches if any field contains the query as a case-insensitive substring.
// An empty or whitespace-only query matches everything.
func FieldMatcher[T any](fields func(item T) []string) Matcher[T] {
	return func(item T, query string) bool {
		q := strings.ToLower(strings.TrimSpace(query))
		if q == "" {
			return true
		}
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}
}

// View filters and paginates a fixed backing array. The backing array is
// treated as an immutable snapshot; every accessor derives its result from
// the current query and page.
type View[T any] struct {
	backing  []T
	match    Matcher[T]
	pageSize int
	query    string
	page     int
}

// New returns a View over items with the given page size and matcher,
// positioned at page 1 with an empty query.
func New[T any](items []T, pageSize int, match Matcher[T]) *View[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &View[T]{backing: items, match: match, pageSize: pageSize, page: 1}
}

// SetQuery changes the search text. Any change resets the page to 1 so the
// user never lands on a now out-of-range page after narrowing results.
func (v *View[T]) SetQuery(query string) {
	if query == v.query {
		return
	}
	v.query = query
	v.page = 1
}

// Query returns the current search text.
func (v *View[T]) Query() string { return v.query }

// SetPage moves to the given page, clamped to [1, TotalPages].
func (v *View[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if tp := v.TotalPages(); tp > 0 && page > tp {
		page = tp
	}
	v.page = page
}

// PageNum returns the current page number (1-based).
func (v *View[T]) PageNum() int { return v.page }

// PageSize returns the fixed page size.
func (v *View[T]) PageSize() int { return v.pageSize }

// Filtered returns every backing item matching the current query, in
// backing order.
func (v *View[T]) Filtered() []T {
	out := make([]T, 0, len(v.backing))
	for _, item := range v.backing {
		if v.match(item, v.query) {
			out = append(out, item)
		}
	}
	return out
}

// Total returns the number of items matching the current query.
func (v *View[T]) Total() int { return len(v.Filtered()) }

// TotalPages returns ceil(len(Filtered) / pageSize).
func (v *View[T]) TotalPages() int {
	return (len(v.Filtered()) + v.pageSize - 1) / v.pageSize
}

// Page returns the items of the current page.
func (v *View[T]) Page() []T {
	filtered := v.Filtered()
	start := (v.page - 1) * v.pageSize
	if start >= len(filtered) {
		return []T{}
	}
	end := start + v.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// PageNumbers returns the page-number window for display. With at most five
// pages every number is shown. Beyond that the window collapses around the
// current page:
//
//	page <= 3:              1 2 3 … last
//	page >= last-2:         1 … last-2 last-1 last
//	otherwise:              1 … page … last
func (v *View[T]) PageNumbers() []PageRef {
	tp := v.TotalPages()
	if tp <= windowThreshold {
		out := make([]PageRef, 0, tp)
		for p := 1; p <= tp; p++ {
			out = append(out, PageRef{Number: p})
		}
		return out
	}

	switch {
	case v.page <= 3:
		return []PageRef{{Number: 1}, {Number: 2}, {Number: 3}, {Ellipsis: true}, {Number: tp}}
	case v.page >= tp-2:
		return []PageRef{{Number: 1}, {Ellipsis: true}, {Number: tp - 2}, {Number: tp - 1}, {Number: tp}}
	default:
		return []PageRef{{Number: 1}, {Ellipsis: true}, {Number: v.page}, {Ellipsis: true}, {Number: tp}}
	}
}
