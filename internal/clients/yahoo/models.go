package yahoo

// QuoteSummary contains the per-symbol quote fields the leaderboard uses
type QuoteSummary struct {
	Symbol        string   `json:"symbol"`
	ShortName     *string  `json:"short_name,omitempty"`
	MarketCap     *float64 `json:"market_cap,omitempty"`
	RevenueGrowth *float64 `json:"revenue_growth,omitempty"`
}
