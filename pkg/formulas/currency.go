package formulas

import "fmt"

// FormatMarketCap renders a monetary value with a magnitude suffix:
// trillions, billions, or millions, two decimals. Thresholds are strict
// greater-than, so exactly 1e12 formats as "$1000.00 B".
func FormatMarketCap(value float64) string {
	switch {
	case value > 1e12:
		return fmt.Sprintf("$%.2f T", value/1e12)
	case value > 1e9:
		return fmt.Sprintf("$%.2f B", value/1e9)
	default:
		return fmt.Sprintf("$%.2f M", value/1e6)
	}
}

// FormatPercent renders a ratio as a percentage with two decimals
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}
