package stats

import (
	mstats "github.com/montanaflynn/stats"
)

// Summary holds the descriptive statistics reported alongside correlation
// artifacts.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Count  int     `json:"count"`
}

// Summarize computes descriptive statistics for a sample. Empty samples
// return a zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	mean, _ := mstats.Mean(values)
	sd, _ := mstats.StandardDeviation(values)
	minV, _ := mstats.Min(values)
	maxV, _ := mstats.Max(values)
	median, _ := mstats.Median(values)
	return Summary{
		Mean:   mean,
		StdDev: sd,
		Min:    minV,
		Max:    maxV,
		Median: median,
		Count:  len(values),
	}
}
