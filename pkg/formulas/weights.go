package formulas

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the total of a slice of float64 values
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return floats.Sum(data)
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// Weights returns each value's share of the slice total. A zero or empty
// total yields all-zero weights rather than NaN.
func Weights(values []float64) []float64 {
	weights := make([]float64, len(values))
	total := Sum(values)
	if total == 0 {
		return weights
	}
	for i, v := range values {
		weights[i] = v / total
	}
	return weights
}

// Herfindahl computes the Herfindahl-Hirschman concentration index from a
// set of weights: the sum of squared shares. 1/N for an equal-weight set,
// approaching 1 as one constituent dominates.
func Herfindahl(weights []float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	return floats.Dot(weights, weights)
}
