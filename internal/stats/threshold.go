package stats

import (
	mstats "github.com/montanaflynn/stats"
)

// ConfusionCounts are raw 2x2 tallies for a binary classifier.
type ConfusionCounts struct {
	TP int
	TN int
	FP int
	FN int
}

// Precision is TP/(TP+FP), 0 when undefined.
func (c ConfusionCounts) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall is TP/(TP+FN), 0 when undefined.
func (c ConfusionCounts) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// Accuracy is the fraction of correct predictions, 0 when empty.
func (c ConfusionCounts) Accuracy() float64 {
	total := c.TP + c.TN + c.FP + c.FN
	if total == 0 {
		return 0
	}
	return float64(c.TP+c.TN) / float64(total)
}

// F1 is the harmonic mean of precision and recall, defined as 0 when
// precision+recall is 0 so consumers never see NaN.
func (c ConfusionCounts) F1() float64 {
	p, r := c.Precision(), c.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// ThresholdResult is the outcome of a percentile cut-point search: the best
// cut expressed in score space, and the F1 it achieved.
type ThresholdResult struct {
	Threshold  float64
	F1         float64
	Percentile int
	SampleSize int
}

// BestThresholdByF1 evaluates each candidate percentile as a cut point over
// the scored sample ("positive" = score strictly below the cut, i.e. at
// risk) and keeps the cut maximizing F1 against the outcome labels. The
// returned threshold is in score space, not percentile space. Fails with
// ErrInsufficientData when fewer than minSamples pairs are available.
func BestThresholdByF1(scores []float64, atRisk []bool, percentiles []int, minSamples int) (ThresholdResult, error) {
	if len(scores) != len(atRisk) || len(scores) == 0 || len(scores) < minSamples {
		return ThresholdResult{}, ErrInsufficientData
	}
	if len(percentiles) == 0 {
		percentiles = DefaultPercentiles()
	}

	best := ThresholdResult{SampleSize: len(scores)}
	found := false
	for _, pct := range percentiles {
		if pct <= 0 || pct >= 100 {
			continue
		}
		cut, err := mstats.Percentile(scores, float64(pct))
		if err != nil {
			continue
		}
		f1 := evaluateCut(scores, atRisk, cut).F1()
		if !found || f1 > best.F1 {
			best.Threshold = cut
			best.F1 = f1
			best.Percentile = pct
			found = true
		}
	}
	if !found {
		return ThresholdResult{}, ErrInsufficientData
	}
	return best, nil
}

// AccuracyAtThreshold scores a fixed cut point against labeled data.
func AccuracyAtThreshold(threshold float64, scores []float64, atRisk []bool) float64 {
	if len(scores) != len(atRisk) || len(scores) == 0 {
		return 0
	}
	return evaluateCut(scores, atRisk, threshold).Accuracy()
}

func evaluateCut(scores []float64, atRisk []bool, cut float64) ConfusionCounts {
	var c ConfusionCounts
	for i, s := range scores {
		predicted := s < cut
		switch {
		case predicted && atRisk[i]:
			c.TP++
		case predicted && !atRisk[i]:
			c.FP++
		case !predicted && atRisk[i]:
			c.FN++
		default:
			c.TN++
		}
	}
	return c
}

// DefaultPercentiles returns the standard candidate cut points, 10th through
// 90th in steps of 5.
func DefaultPercentiles() []int {
	out := make([]int, 0, 17)
	for p := 10; p <= 90; p += 5 {
		out = append(out, p)
	}
	return out
}
