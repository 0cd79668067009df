package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func TestGetQuoteSummary(t *testing.T) {
	body := `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple Inc.","marketCap":3400000000000,"revenueGrowth":0.061}],"error":null}}`
	srv := quoteServer(t, body, http.StatusOK)
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())

	quote, err := client.GetQuoteSummary(context.Background(), "AAPL")
	require.NoError(t, err)

	require.NotNil(t, quote.MarketCap)
	assert.Equal(t, 3.4e12, *quote.MarketCap)
	require.NotNil(t, quote.ShortName)
	assert.Equal(t, "Apple Inc.", *quote.ShortName)
	require.NotNil(t, quote.RevenueGrowth)
	assert.Equal(t, 0.061, *quote.RevenueGrowth)
}

func TestGetQuoteSummary_MissingFields(t *testing.T) {
	body := `{"quoteResponse":{"result":[{"symbol":"AAPL"}],"error":null}}`
	srv := quoteServer(t, body, http.StatusOK)
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())

	quote, err := client.GetQuoteSummary(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.Nil(t, quote.MarketCap)
	assert.Nil(t, quote.ShortName)
	assert.Nil(t, quote.RevenueGrowth)
}

func TestGetQuoteSummary_EmptyResult(t *testing.T) {
	body := `{"quoteResponse":{"result":[],"error":null}}`
	srv := quoteServer(t, body, http.StatusOK)
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())

	_, err := client.GetQuoteSummary(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestGetQuoteSummary_APIError(t *testing.T) {
	body := `{"quoteResponse":{"result":[],"error":"Invalid symbol"}}`
	srv := quoteServer(t, body, http.StatusOK)
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())

	_, err := client.GetQuoteSummary(context.Background(), "AAPL")
	assert.Error(t, err)
}

func TestGetQuoteSummary_HTTPError(t *testing.T) {
	srv := quoteServer(t, "too many requests", http.StatusTooManyRequests)
	defer srv.Close()

	client := NewClient(srv.URL, zerolog.Nop())

	_, err := client.GetQuoteSummary(context.Background(), "AAPL")
	assert.Error(t, err)
}
