package web

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFromQuery(t *testing.T) {
	testCases := []struct {
		name     string
		url      string
		wantPage int
		wantSize int
	}{
		{"defaults", "/api/admin/contact", 0, 20},
		{"explicit", "/api/admin/contact?page=2&size=5", 2, 5},
		{"negative page ignored", "/api/admin/contact?page=-1", 0, 20},
		{"oversized ignored", "/api/admin/contact?size=1000", 0, 20},
		{"garbage ignored", "/api/admin/contact?page=abc&size=xyz", 0, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := PageFromQuery(httptest.NewRequest("GET", tc.url, nil))
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSize, p.Size)
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, PageRequest{Page: 0, Size: 2}, 5)

	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Content, 2)
}

func TestNewPageEmptyContent(t *testing.T) {
	page := NewPage[string](nil, PageRequest{Page: 0, Size: 20}, 0)

	assert.NotNil(t, page.Content, "content serializes as [] not null")
	assert.Equal(t, 0, page.TotalPages)
}
