package earlywarning

import (
	"errors"

	"github.com/yungbote/student-analysis-system/internal/stats"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// holdoutDenominator: four fifths of the component sample search for the
// threshold, the last fifth scores it.
const holdoutDenominator = 5

// trainComponent extracts the labeled score sample for one component, runs
// the percentile cut-point search on the training slice, and scores the
// winning cut on the holdout slice. Returns ok=false when the component has
// too few scored students.
func (s *System) trainComponent(component types.ComponentIdentifier, population []types.StudentLongitudinalData, outcomes types.StudentOutcomes) (types.ComponentThreshold, bool) {
	scores, labels := labeledScores(component, population, outcomes)
	if len(scores) < s.cfg.MinStudentsForThreshold {
		return types.ComponentThreshold{}, false
	}

	holdout := len(scores) / holdoutDenominator
	split := len(scores) - holdout

	dist := stats.Summarize(scores)
	s.log.Debug("component score sample",
		"component", component.Key(),
		"count", dist.Count,
		"mean", dist.Mean,
		"std_dev", dist.StdDev,
	)

	best, err := stats.BestThresholdByF1(scores[:split], labels[:split], s.cfg.ThresholdPercentiles, 3)
	if errors.Is(err, stats.ErrInsufficientData) {
		return types.ComponentThreshold{}, false
	}
	if err != nil {
		s.log.Warn("threshold search failed", "component", component.Key(), "error", err)
		return types.ComponentThreshold{}, false
	}

	confidence := stats.AccuracyAtThreshold(best.Threshold, scores[split:], labels[split:])
	if holdout == 0 {
		// No holdout slice possible; fall back to in-sample accuracy.
		confidence = stats.AccuracyAtThreshold(best.Threshold, scores, labels)
	}

	return types.NewComponentThreshold(component, best.Threshold, stats.Clamp01(confidence), len(scores)), true
}

// labeledScores pairs each classified student's score for the component with
// their outcome label. Population order is preserved so training runs are
// deterministic.
func labeledScores(component types.ComponentIdentifier, population []types.StudentLongitudinalData, outcomes types.StudentOutcomes) (scores []float64, labels []bool) {
	for _, student := range population {
		if !outcomes.Proficient[student.ExternalID] && !outcomes.Struggling[student.ExternalID] {
			continue
		}
		score, ok := student.ComponentScore(component)
		if !ok {
			continue
		}
		scores = append(scores, score)
		labels = append(labels, outcomes.IsStruggling(student.ExternalID))
	}
	return scores, labels
}
