package leaderboard

import (
	"sort"

	"github.com/aristath/capboard/pkg/formulas"
)

// RankByMarketCap sorts records descending by market cap and returns the top
// k as ranked rows. Ties break on symbol ascending so output is
// deterministic regardless of fetch order. Each row carries its weight in
// the summed cap of ALL records, not just the surviving k.
func RankByMarketCap(records []MetricRecord, k int) []RankedRow {
	sorted := make([]MetricRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].MarketCap != sorted[j].MarketCap {
			return sorted[i].MarketCap > sorted[j].MarketCap
		}
		return sorted[i].Symbol < sorted[j].Symbol
	})

	caps := make([]float64, len(sorted))
	for i, r := range sorted {
		caps[i] = r.MarketCap
	}
	weights := formulas.Weights(caps)

	if k > len(sorted) {
		k = len(sorted)
	}

	rows := make([]RankedRow, 0, k)
	for i := 0; i < k; i++ {
		rows = append(rows, RankedRow{
			Rank:        i + 1,
			Symbol:      sorted[i].Symbol,
			Name:        sorted[i].Name,
			MarketCap:   sorted[i].MarketCap,
			IndexWeight: weights[i],
		})
	}
	return rows
}

// RankByRevenueGrowth sorts records with a known growth value descending and
// returns the top k. Same tie-break as the cap board.
func RankByRevenueGrowth(records []MetricRecord, k int) []GrowthRow {
	var withGrowth []MetricRecord
	for _, r := range records {
		if r.RevenueGrowth != nil {
			withGrowth = append(withGrowth, r)
		}
	}

	sort.Slice(withGrowth, func(i, j int) bool {
		gi, gj := *withGrowth[i].RevenueGrowth, *withGrowth[j].RevenueGrowth
		if gi != gj {
			return gi > gj
		}
		return withGrowth[i].Symbol < withGrowth[j].Symbol
	})

	if k > len(withGrowth) {
		k = len(withGrowth)
	}

	rows := make([]GrowthRow, 0, k)
	for i := 0; i < k; i++ {
		rows = append(rows, GrowthRow{
			Rank:          i + 1,
			Symbol:        withGrowth[i].Symbol,
			Name:          withGrowth[i].Name,
			RevenueGrowth: *withGrowth[i].RevenueGrowth,
		})
	}
	return rows
}

// BuildStats computes index-level summary statistics from the usable records
func BuildStats(records []MetricRecord, capBoard []RankedRow) IndexStats {
	caps := make([]float64, len(records))
	for i, r := range records {
		caps[i] = r.MarketCap
	}

	topShare := 0.0
	for _, row := range capBoard {
		topShare += row.IndexWeight
	}

	return IndexStats{
		SymbolCount:    len(records),
		TotalMarketCap: formulas.Sum(caps),
		MeanMarketCap:  formulas.Mean(caps),
		TopShare:       topShare,
		Concentration:  formulas.Herfindahl(formulas.Weights(caps)),
	}
}
