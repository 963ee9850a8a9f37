package earlywarning

import (
	"fmt"

	"github.com/yungbote/student-analysis-system/internal/types"
)

// DiscoverIndicators re-expresses correlation maps as named predictive
// indicators, one per map, tiered by the strength of the map's strongest
// edge. The maps arrive already sorted by strength, so the indicator list
// inherits that order.
func DiscoverIndicators(maps []types.ComponentCorrelationMap) []types.PredictiveIndicator {
	var out []types.PredictiveIndicator
	for _, m := range maps {
		path := m.StrongestPath
		if path == nil || len(m.Correlations) == 0 {
			continue
		}
		strongest := m.Correlations[0]
		tier := indicatorTier(strongest.Result.Strength())
		out = append(out, types.PredictiveIndicator{
			Name:        fmt.Sprintf("%s_predicts_%s", m.Source.Key(), path.Target.Key()),
			Source:      m.Source,
			Target:      path.Target,
			Correlation: path.CumulativeCorrelation,
			Confidence:  path.Confidence,
			Tier:        tier,
			Description: fmt.Sprintf(
				"%s %s in grade %d predicts %s %s in grade %d (r=%.2f, n=%d)",
				m.Source.Subject, m.Source.Component, m.Source.Grade,
				path.Target.Subject, path.Target.Component, path.Target.Grade,
				path.CumulativeCorrelation, strongest.SampleSize,
			),
			Recommendations: tierRecommendations(tier, m.Source),
		})
	}
	return out
}

func indicatorTier(strength types.CorrelationStrength) types.IndicatorTier {
	switch strength {
	case types.StrengthVeryStrong:
		return types.TierPrimary
	case types.StrengthStrong:
		return types.TierSecondary
	}
	return types.TierWatch
}

func tierRecommendations(tier types.IndicatorTier, source types.ComponentIdentifier) []string {
	switch tier {
	case types.TierPrimary:
		return []string{
			fmt.Sprintf("Screen all grade %d students on %s at intake", source.Grade, source.Component),
			fmt.Sprintf("Prioritize %s intervention before the next assessment window", source.Subject),
		}
	case types.TierSecondary:
		return []string{
			fmt.Sprintf("Monitor %s scores each grading period", source.Component),
			fmt.Sprintf("Review %s instruction pacing for flagged students", source.Subject),
		}
	}
	return []string{
		fmt.Sprintf("Track %s as a watch-list signal only", source.Component),
	}
}
