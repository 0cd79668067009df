package wikipedia

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Client scrapes index constituents from a Wikipedia page
type Client struct {
	client  *http.Client
	pageURL string
	log     zerolog.Logger
}

// NewClient creates a new constituents page client
func NewClient(pageURL string, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		pageURL: pageURL,
		log:     log.With().Str("client", "wikipedia").Logger(),
	}
}

// GetConstituents returns the ticker symbols from the first table on the page.
// Symbols are normalized for Yahoo Finance: share-class dots become dashes
// (BRK.B -> BRK-B).
func (c *Client) GetConstituents(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers to mimic browser
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constituents page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("constituents page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse constituents page: %w", err)
	}

	symbols, err := ParseSymbolTable(doc)
	if err != nil {
		return nil, err
	}

	c.log.Info().Int("count", len(symbols)).Msg("Fetched index constituents")
	return symbols, nil
}

// ParseSymbolTable extracts the "Symbol" column from the first table in the
// document.
func ParseSymbolTable(doc *goquery.Document) ([]string, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found on constituents page")
	}

	// Locate the Symbol column by header text
	symbolCol := -1
	table.Find("tr").First().Find("th").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(s.Text()), "Symbol") {
			symbolCol = i
			return false
		}
		return true
	})
	if symbolCol < 0 {
		return nil, fmt.Errorf("no Symbol column in constituents table")
	}

	var symbols []string
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cell := row.Find("td").Eq(symbolCol)
		symbol := strings.TrimSpace(cell.Text())
		if symbol == "" {
			return
		}
		symbols = append(symbols, NormalizeSymbol(symbol))
	})

	if len(symbols) == 0 {
		return nil, fmt.Errorf("constituents table has no symbols")
	}

	return symbols, nil
}

// NormalizeSymbol converts a source symbol to Yahoo Finance convention
func NormalizeSymbol(symbol string) string {
	return strings.ReplaceAll(symbol, ".", "-")
}
