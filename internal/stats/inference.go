package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// SignificanceLevel is the alpha below which a correlation is reported as
// statistically significant.
const SignificanceLevel = 0.05

// PValue computes the two-tailed p-value of a Pearson r under a Student's t
// distribution with sampleSize-2 degrees of freedom. Samples too small to
// test, and |r| at or beyond 1 (infinite t), resolve to the defined
// extremes instead of NaN.
func PValue(r float64, sampleSize int) float64 {
	if sampleSize < 3 {
		return 1
	}
	if math.IsNaN(r) {
		return 1
	}
	r2 := r * r
	if r2 >= 1 {
		return 0
	}
	df := float64(sampleSize - 2)
	t := math.Abs(r) * math.Sqrt(df/(1-r2))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - dist.CDF(t))
	return Clamp01(p)
}

// FisherConfidenceInterval returns the 95% confidence interval for r in
// r-space via the Fisher z-transform. Samples smaller than 4 have no defined
// standard error and return the full (-1, 1) interval.
func FisherConfidenceInterval(r float64, sampleSize int) (lower, upper float64) {
	if sampleSize < 4 {
		return -1, 1
	}
	// atanh blows up at |r|=1; nudge inside the open interval.
	const rCap = 0.999999
	if r > rCap {
		r = rCap
	} else if r < -rCap {
		r = -rCap
	}
	z := math.Atanh(r)
	se := 1 / math.Sqrt(float64(sampleSize-3))
	zCrit := distuv.UnitNormal.Quantile(0.975)
	lower = math.Tanh(z - zCrit*se)
	upper = math.Tanh(z + zCrit*se)
	return lower, upper
}

// Clamp01 forces a probability-like value into [0,1], mapping NaN and
// infinities to 0 so IEEE degeneracies never reach downstream risk scores.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
