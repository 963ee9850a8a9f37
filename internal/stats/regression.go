package stats

import "math"

// RSquared is the coefficient of determination for a simple correlation:
// r squared.
func RSquared(r float64) float64 {
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r * r
}

// RSquaredResidual computes 1 - SS_res/SS_tot for regression-style use.
// A zero-variance actual series returns 0.
func RSquaredResidual(predicted, actual []float64) float64 {
	if len(predicted) != len(actual) || len(actual) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range actual {
		mean += v
	}
	mean /= float64(len(actual))

	ssRes, ssTot := 0.0, 0.0
	for i := range actual {
		d := actual[i] - predicted[i]
		ssRes += d * d
		t := actual[i] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// RMSE is the root mean squared error of paired predictions.
func RMSE(predicted, actual []float64) float64 {
	if len(predicted) != len(actual) || len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		d := predicted[i] - actual[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(actual)))
}

// MAE is the mean absolute error of paired predictions.
func MAE(predicted, actual []float64) float64 {
	if len(predicted) != len(actual) || len(actual) == 0 {
		return 0
	}
	sum := 0.0
	for i := range actual {
		sum += math.Abs(predicted[i] - actual[i])
	}
	return sum / float64(len(actual))
}
