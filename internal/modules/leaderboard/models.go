package leaderboard

import (
	"errors"
	"time"
)

// TopN is the number of rows each board keeps
const TopN = 10

// Stage failures surfaced to callers. Per-symbol fetch errors are absorbed
// by the fetch loop and never reach this level.
var (
	// ErrSourceUnavailable means the constituents page could not be fetched
	// or parsed. Fatal for the cycle, no partial result.
	ErrSourceUnavailable = errors.New("constituents source unavailable")

	// ErrNoData means the fetch pass produced zero usable records.
	ErrNoData = errors.New("no market data available")
)

// MetricRecord is one successfully fetched symbol. Records with an absent or
// non-positive market cap are never created.
type MetricRecord struct {
	Symbol        string   `json:"symbol"`
	Name          string   `json:"name"`
	MarketCap     float64  `json:"market_cap"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`
}

// RankedRow is one row of the market-cap board
type RankedRow struct {
	Rank        int     `json:"rank"`
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	MarketCap   float64 `json:"market_cap"`
	IndexWeight float64 `json:"index_weight"` // share of the summed cap of all usable records
}

// GrowthRow is one row of the revenue-growth board
type GrowthRow struct {
	Rank          int     `json:"rank"`
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	RevenueGrowth float64 `json:"revenue_growth"`
}

// IndexStats summarizes how concentrated the index is
type IndexStats struct {
	SymbolCount    int     `json:"symbol_count"`
	TotalMarketCap float64 `json:"total_market_cap"`
	MeanMarketCap  float64 `json:"mean_market_cap"`
	TopShare       float64 `json:"top_share"`     // combined index weight of the cap board
	Concentration  float64 `json:"concentration"` // Herfindahl index over all usable records
}

// Boards is one refresh cycle's output. Never mutated after creation; a
// refresh builds an entirely new value.
type Boards struct {
	TopByMarketCap []RankedRow `json:"top_by_market_cap"`
	TopByGrowth    []GrowthRow `json:"top_by_growth"`
	Stats          IndexStats  `json:"stats"`
	GeneratedAt    time.Time   `json:"generated_at"`
}

// ProgressFunc observes fetch progress. Advisory only, may be nil.
type ProgressFunc func(completed, total int, symbol string)
