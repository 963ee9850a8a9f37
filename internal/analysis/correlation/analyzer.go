// Package correlation discovers cross-grade statistical relationships
// between assessment components over a student population.
package correlation

import (
	"github.com/yungbote/student-analysis-system/internal/platform/logger"
	"github.com/yungbote/student-analysis-system/internal/stats"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// minPairedSamples is the floor below which a correlation is not computed
// and a degenerate result is returned instead.
const minPairedSamples = 3

// Analyzer computes a single correlation between two component score series
// extracted from a population. It is stateless and safe for concurrent use.
type Analyzer struct {
	log *logger.Logger
}

func NewAnalyzer(log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &Analyzer{log: log.With("component", "CorrelationAnalyzer")}
}

// Correlate extracts the paired sample for (source, target) and computes the
// full correlation statistics over it. Students missing either score are
// dropped from the pair join. Populations yielding fewer than three pairs
// produce a degenerate, non-significant result rather than an error.
func (a *Analyzer) Correlate(source, target types.ComponentIdentifier, population []types.StudentLongitudinalData) types.CorrelationResult {
	xs, ys := pairedScores(source, target, population)

	if len(xs) < minPairedSamples {
		return degenerateResult(source, target, len(xs))
	}

	r := stats.PearsonR(xs, ys)
	p := stats.PValue(r, len(xs))
	lower, upper := stats.FisherConfidenceInterval(r, len(xs))

	return types.CorrelationResult{
		Source:             source,
		Target:             target,
		PearsonR:           r,
		SpearmanR:          stats.SpearmanR(xs, ys),
		RSquared:           stats.RSquared(r),
		PValue:             p,
		SampleSize:         len(xs),
		ConfidenceInterval: types.ConfidenceInterval{Lower: lower, Upper: upper},
		IsSignificant:      p < stats.SignificanceLevel,
	}
}

// pairedScores joins source and target scores by student, keeping only
// students with both present.
func pairedScores(source, target types.ComponentIdentifier, population []types.StudentLongitudinalData) (xs, ys []float64) {
	for _, student := range population {
		x, ok := student.ComponentScore(source)
		if !ok {
			continue
		}
		y, ok := student.ComponentScore(target)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys
}

func degenerateResult(source, target types.ComponentIdentifier, sampleSize int) types.CorrelationResult {
	return types.CorrelationResult{
		Source:             source,
		Target:             target,
		PValue:             1,
		SampleSize:         sampleSize,
		ConfidenceInterval: types.ConfidenceInterval{Lower: -1, Upper: 1},
	}
}
