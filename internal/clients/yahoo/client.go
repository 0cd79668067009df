package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client is a Yahoo Finance quote API client
type Client struct {
	client  *http.Client
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: baseURL,
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// yahooQuoteResponse represents the response from Yahoo Finance quote API
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuoteSummary fetches the quote fields used for ranking a single symbol
func (c *Client) GetQuoteSummary(ctx context.Context, symbol string) (*QuoteSummary, error) {
	info, err := c.getQuoteInfo(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote info: %w", err)
	}

	return &QuoteSummary{
		Symbol:        symbol,
		ShortName:     getStringPtr(info, "shortName"),
		MarketCap:     getFloat64(info, "marketCap"),
		RevenueGrowth: getFloat64(info, "revenueGrowth"),
	}, nil
}

// getQuoteInfo fetches quote information from Yahoo Finance API
func (c *Client) getQuoteInfo(ctx context.Context, symbol string) (map[string]interface{}, error) {
	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", "symbol,shortName,longName,marketCap,revenueGrowth")

	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result yahooQuoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// Helper functions to safely extract values from map

func getFloat64(m map[string]interface{}, key string) *float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return &v
		case int:
			f := float64(v)
			return &f
		case int64:
			f := float64(v)
			return &f
		}
	}
	return nil
}

func getStringPtr(m map[string]interface{}, key string) *string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok && s != "" {
			return &s
		}
	}
	return nil
}
