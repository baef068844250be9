package web

import (
	"net/http"
	"strconv"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PageRequest selects a zero-based page of results.
type PageRequest struct {
	Page int
	Size int
}

// PageFromQuery reads page/size query parameters, falling back to the
// defaults on absent or unparseable values.
func PageFromQuery(r *http.Request) PageRequest {
	p := PageRequest{Page: 0, Size: defaultPageSize}
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		p.Page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 && v <= maxPageSize {
		p.Size = v
	}
	return p
}

// Limit returns the row limit for the page.
func (p PageRequest) Limit() int { return p.Size }

// Offset returns the row offset for the page.
func (p PageRequest) Offset() int { return p.Page * p.Size }

// Page is a paginated result envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage wraps content with paging metadata derived from the request and
// the total row count.
func NewPage[T any](content []T, req PageRequest, total int64) *Page[T] {
	if content == nil {
		content = []T{}
	}
	if req.Size <= 0 {
		req.Size = defaultPageSize
	}
	pages := int(total) / req.Size
	if int(total)%req.Size != 0 {
		pages++
	}
	return &Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
