package utils

import "sort"

// Median returns the middle value of values, averaging the two middle values
// for even lengths. The input is not modified. Median of an empty slice is 0.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
