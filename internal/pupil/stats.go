package pupil

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// validValues extracts the present values from rs, preserving order.
func validValues(rs []Reading) []float64 {
	out := make([]float64, 0, len(rs))
	for _, r := range rs {
		if r.Valid {
			out = append(out, r.Value)
		}
	}
	return out
}

// meanValid averages the valid values in rs. ok is false when every input
// is missing.
func meanValid(rs []Reading) (mean float64, ok bool) {
	vals := validValues(rs)
	if len(vals) == 0 {
		return 0, false
	}
	return stat.Mean(vals, nil), true
}

// median computes the median of values, averaging the two middle elements
// for even-length input. The input slice is not modified.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// mad computes the median absolute deviation of values around med.
func mad(values []float64, med float64) float64 {
	if len(values) == 0 {
		return 0
	}
	devs := make([]float64, len(values))
	for i, v := range values {
		d := v - med
		if d < 0 {
			d = -d
		}
		devs[i] = d
	}
	return median(devs)
}
