package formulas

import "testing"

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "trillions",
			value:    1.5e12,
			expected: "$1.50 T",
		},
		{
			name:     "exactly 1e12 falls to billions",
			value:    1e12,
			expected: "$1000.00 B",
		},
		{
			name:     "billions",
			value:    2.345e9,
			expected: "$2.35 B",
		},
		{
			name:     "exactly 1e9 falls to millions",
			value:    1e9,
			expected: "$1000.00 M",
		},
		{
			name:     "millions",
			value:    5e8,
			expected: "$500.00 M",
		},
		{
			name:     "three trillion",
			value:    3e12,
			expected: "$3.00 T",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatMarketCap(tt.value)
			if result != tt.expected {
				t.Errorf("FormatMarketCap(%g) = %q, want %q", tt.value, result, tt.expected)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0.1234, "12.34%"},
		{1.0, "100.00%"},
		{0.0007, "0.07%"},
		{-0.05, "-5.00%"},
	}

	for _, tt := range tests {
		result := FormatPercent(tt.value)
		if result != tt.expected {
			t.Errorf("FormatPercent(%g) = %q, want %q", tt.value, result, tt.expected)
		}
	}
}
