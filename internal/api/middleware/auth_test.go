package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juzbuild/juzbuild/internal/core"
)

func TestAuth_MissingKey(t *testing.T) {
	// Auth checks the header before any DB lookup, so nil pool is safe here.
	handler := Auth(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/sites", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &body)
	assert.NoError(t, err)
	assert.Equal(t, "missing API key", body["error"])
}

func TestExtractAPIKey(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		want   string
	}{
		{"x-api-key", map[string]string{"X-API-Key": "jzb_abc123"}, "jzb_abc123"},
		{"bearer token", map[string]string{"Authorization": "Bearer jzb_abc123"}, "jzb_abc123"},
		{"x-api-key wins", map[string]string{"X-API-Key": "jzb_abc", "Authorization": "Bearer jzb_def"}, "jzb_abc"},
		{"empty", nil, ""},
		{"basic auth ignored", map[string]string{"Authorization": "Basic dXNlcjpwYXNz"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractAPIKey(req))
		})
	}
}

func TestHashConsistency(t *testing.T) {
	keyHash := core.HashAPIKey("test-api-key-12345")
	assert.Len(t, keyHash, 64)
	assert.Equal(t, keyHash, core.HashAPIKey("test-api-key-12345"))
}
