// Package report aggregates benchmark measurements into a reportable form
// and renders the fixed-width text layout downstream tooling parses.
package report

import "sort"

// Median returns the element at index len/2 of the sorted sequence. For
// even-length inputs this picks the upper of the two middle elements rather
// than interpolating, which keeps the result an actual observed sample.
// Returns 0 for an empty input. The input slice is not modified.
func Median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}

// MinMax returns the smallest and largest of samples. Returns (0, 0) for an
// empty input.
func MinMax(samples []float64) (min, max float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	min, max = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}
