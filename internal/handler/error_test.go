package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DukeRupert/gnosis/internal/domain"
	"github.com/DukeRupert/gnosis/internal/middleware"
	"github.com/DukeRupert/gnosis/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorResponse_InternalErrorHidesDetails(t *testing.T) {
	dbErr := &mockDatabaseError{message: `pq: relation "papers" does not exist`}
	internalErr := domain.Internal(dbErr, "paper.list", "failed to list papers")

	for _, accept := range []string{"text/html", "application/json"} {
		req := httptest.NewRequest("GET", "/catalog/papers", nil)
		req.Header.Set("Accept", accept)
		rec := httptest.NewRecorder()

		ErrorResponse(rec, req, newTestLogger(), internalErr)

		body := rec.Body.String()
		assert.Equal(t, http.StatusInternalServerError, rec.Code, accept)
		assert.NotContains(t, body, "pq:", accept)
		assert.NotContains(t, body, "relation", accept)
		assert.NotContains(t, body, "paper.list", accept)
		assert.Contains(t, body, "internal error", accept)
	}
}

func TestErrorResponse_UnwrappedErrorReturnsGeneric(t *testing.T) {
	rawErr := &mockDatabaseError{message: `FATAL: password authentication failed for user "postgres"`}

	req := httptest.NewRequest("GET", "/catalog/papers", nil)
	rec := httptest.NewRecorder()

	ErrorResponse(rec, req, newTestLogger(), rawErr)

	body := rec.Body.String()
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, body, "FATAL")
	assert.NotContains(t, body, "postgres")
	assert.Contains(t, body, "internal error")
}

func TestErrorResponse_InvalidPageRange(t *testing.T) {
	req := httptest.NewRequest("GET", "/catalog/papers?page=9", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	ErrorResponse(rec, req, newTestLogger(), &pagination.InvalidRangeError{Current: 9, First: 1, Last: 3})

	var resp errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.EINVALID, resp.Error.Code)
	assert.Equal(t, "The requested page does not exist.", resp.Error.Message)
}

func TestNotFoundResponse(t *testing.T) {
	req := httptest.NewRequest("GET", "/nope", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	NotFoundResponse(rec, req, newTestLogger())

	var resp errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ENOTFOUND, resp.Error.Code)
}

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{domain.EINVALID, http.StatusBadRequest},
		{domain.ENOTFOUND, http.StatusNotFound},
		{domain.ERATELIMIT, http.StatusTooManyRequests},
		{domain.EINTERNAL, http.StatusInternalServerError},
		{"unknown", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForCode(tt.code), tt.code)
	}
}

func TestAcceptsJSON(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    bool
	}{
		{"accept header", "/catalog/papers", map[string]string{"Accept": "application/json"}, true},
		{"html", "/catalog/papers", map[string]string{"Accept": "text/html"}, false},
		{"htmx", "/catalog/papers", map[string]string{"HX-Request": "true", "Accept": "application/json"}, false},
		{"json suffix", "/catalog/papers.json", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, acceptsJSON(req))
		})
	}
}

// =============================================================================
// Search rate limit
// =============================================================================

func TestSearch_RateLimitedThroughErrorResponse(t *testing.T) {
	logger := newTestLogger()
	limit, closeFn := middleware.NewSearchRateLimit(1, logger, ErrorResponder(logger))
	defer closeFn()

	h := NewCatalogHandler(&fakePaperService{total: 3}, &fakeDatasetService{total: 3}, 10, logger)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, limit)

	headers := map[string]string{"Accept": "application/json"}
	require.Equal(t, http.StatusOK, serve(mux, "/catalog/search?keywords=gnn", headers).Code)

	rec := serve(mux, "/catalog/search?keywords=gnn", headers)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var resp errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.ERATELIMIT, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Too many searches")

	rec = serve(mux, "/catalog/search?keywords=gnn", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many searches")

	// Listings are not limited.
	assert.Equal(t, http.StatusOK, serve(mux, "/catalog/papers", headers).Code)
}

// mockDatabaseError simulates a database error for testing
type mockDatabaseError struct {
	message string
}

func (e *mockDatabaseError) Error() string {
	return e.message
}
