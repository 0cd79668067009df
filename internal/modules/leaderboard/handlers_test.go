package leaderboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/capboard/internal/clients/yahoo"
)

func newTestHandler(lister ConstituentLister, quotes QuoteClient) *Handler {
	service, _ := newTestService(lister, quotes, nil)
	return NewHandler(service, zerolog.Nop())
}

func TestHandleTop10(t *testing.T) {
	lister := &MockLister{symbols: []string{"AAA", "CCC"}}
	quotes := &MockQuotes{
		quotes: map[string]*yahoo.QuoteSummary{
			"AAA": quoteWithCap("AAA", "Alpha Corp", 3e12),
			"CCC": quoteWithCap("CCC", "Gamma Inc", 5e8),
		},
	}
	handler := newTestHandler(lister, quotes)

	req := httptest.NewRequest("GET", "/api/leaderboard/top10", nil)
	w := httptest.NewRecorder()
	handler.HandleTop10(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body struct {
		Rows []capRowResponse `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Rows, 2)
	assert.Equal(t, "AAA", body.Rows[0].Symbol)
	assert.Equal(t, "$3.00 T", body.Rows[0].Display)
	assert.Equal(t, "CCC", body.Rows[1].Symbol)
	assert.Equal(t, "$500.00 M", body.Rows[1].Display)
}

func TestHandleTop10_SourceUnavailable(t *testing.T) {
	lister := &MockLister{err: fmt.Errorf("HTTP 503")}
	handler := newTestHandler(lister, &MockQuotes{})

	req := httptest.NewRequest("GET", "/api/leaderboard/top10", nil)
	w := httptest.NewRecorder()
	handler.HandleTop10(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "constituents source unavailable")
}

func TestHandleTop10_NoData(t *testing.T) {
	lister := &MockLister{symbols: []string{"AAA"}}
	quotes := &MockQuotes{
		errors: map[string]error{"AAA": fmt.Errorf("timeout")},
	}
	handler := newTestHandler(lister, quotes)

	req := httptest.NewRequest("GET", "/api/leaderboard/top10", nil)
	w := httptest.NewRecorder()
	handler.HandleTop10(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandleGrowth(t *testing.T) {
	growth := 0.1234
	quote := quoteWithCap("AAA", "Alpha Corp", 1e9)
	quote.RevenueGrowth = &growth

	lister := &MockLister{symbols: []string{"AAA"}}
	quotes := &MockQuotes{
		quotes: map[string]*yahoo.QuoteSummary{"AAA": quote},
	}
	handler := newTestHandler(lister, quotes)

	req := httptest.NewRequest("GET", "/api/leaderboard/growth", nil)
	w := httptest.NewRecorder()
	handler.HandleGrowth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Rows []growthRowResponse `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	require.Len(t, body.Rows, 1)
	assert.Equal(t, "12.34%", body.Rows[0].Display)
}

func TestHandleRefresh(t *testing.T) {
	lister := &MockLister{symbols: []string{"AAA"}}
	quotes := &MockQuotes{
		quotes: map[string]*yahoo.QuoteSummary{
			"AAA": quoteWithCap("AAA", "Alpha Corp", 1e9),
		},
	}
	service, _ := newTestService(lister, quotes, nil)
	handler := NewHandler(service, zerolog.Nop())

	// Prime the cache
	req := httptest.NewRequest("GET", "/api/leaderboard/top10", nil)
	handler.HandleTop10(httptest.NewRecorder(), req)
	require.Equal(t, 1, lister.fetchCount)

	// Refresh must re-run the pipeline despite the fresh entry
	req = httptest.NewRequest("POST", "/api/leaderboard/refresh", nil)
	w := httptest.NewRecorder()
	handler.HandleRefresh(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, lister.fetchCount)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["refreshed"])
}
