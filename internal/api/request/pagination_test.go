package request

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/sites", nil)
	p := ParsePagination(r)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.Empty(t, p.Cursor)
}

func TestParsePagination_Explicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/sites?limit=10&cursor=test-site-5", nil)
	p := ParsePagination(r)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "test-site-5", p.Cursor)
}

func TestParsePagination_CapsAtMax(t *testing.T) {
	r := httptest.NewRequest("GET", "/sites?limit=9999", nil)
	p := ParsePagination(r)
	assert.Equal(t, MaxLimit, p.Limit)
}

func TestParsePagination_IgnoresInvalidLimit(t *testing.T) {
	r := httptest.NewRequest("GET", "/sites?limit=abc", nil)
	p := ParsePagination(r)
	assert.Equal(t, DefaultLimit, p.Limit)

	r = httptest.NewRequest("GET", "/sites?limit=-5", nil)
	p = ParsePagination(r)
	assert.Equal(t, DefaultLimit, p.Limit)
}
