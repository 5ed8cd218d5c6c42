package helpers

import (
	"net/http"
	"strconv"

	"nazaaralive/internal/listview"
)

// ListParams are the query parameters of an admin list endpoint: a free-text
// filter and a 1-based page number.
type ListParams struct {
	Query string
	Page  int
}

// ParseListParams reads q and page from the request query string. A missing
// or invalid page falls back to 1; the view clamps it to range later.
func ParseListParams(r *http.Request) ListParams {
	params := ListParams{Query: r.URL.Query().Get("q"), Page: 1}
	if s := r.URL.Query().Get("page"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			params.Page = v
		}
	}
	return params
}

// ListMeta is the pagination metadata included in admin list responses.
// Pages is the collapsed page-number window rendered under the list.
// swagger:model ListMeta
type ListMeta struct {
	Query      string             `json:"query"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	Total      int                `json:"total"`
	TotalPages int                `json:"total_pages"`
	Pages      []listview.PageRef `json:"pages"`
}

// ListResponse is the envelope data for an admin list endpoint.
type ListResponse[T any] struct {
	Items []T      `json:"items"`
	Meta  ListMeta `json:"meta"`
}

// NewListResponse applies params to a fresh view over items and captures the
// resulting page and metadata.
func NewListResponse[T any](items []T, pageSize int, match listview.Matcher[T], params ListParams) ListResponse[T] {
	view := listview.New(items, pageSize, match)
	view.SetQuery(params.Query)
	view.SetPage(params.Page)
	return ListResponse[T]{
		Items: view.Page(),
		Meta: ListMeta{
			Query:      view.Query(),
			Page:       view.PageNum(),
			PageSize:   view.PageSize(),
			Total:      view.Total(),
			TotalPages: view.TotalPages(),
			Pages:      view.PageNumbers(),
		},
	}
}
