package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PearsonR computes the Pearson correlation coefficient of two paired
// samples. Degenerate inputs (length mismatch, fewer than two pairs, zero
// variance in either series) return 0 rather than NaN.
func PearsonR(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

// SpearmanR computes the Spearman rank correlation: Pearson applied to
// rank-transformed values, with ties receiving averaged ranks.
func SpearmanR(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	return PearsonR(Ranks(x), Ranks(y))
}

// Ranks returns 1-based ranks for the sample, averaging the ranks of tied
// values.
func Ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Tied run [i, j] shares the average of its positional ranks.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
