package types

// IndicatorTier grades how actionable a predictive indicator is, derived
// from the strength of the correlation behind it.
type IndicatorTier string

const (
	TierPrimary   IndicatorTier = "primary"
	TierSecondary IndicatorTier = "secondary"
	TierWatch     IndicatorTier = "watch"
)

// PredictiveIndicator re-expresses one correlation map as a named indicator
// the intervention planner can act on: the source component, where it leads,
// and the tiered recommendations attached to that strength band.
type PredictiveIndicator struct {
	Name            string              `json:"name"`
	Source          ComponentIdentifier `json:"source"`
	Target          ComponentIdentifier `json:"target"`
	Correlation     float64             `json:"correlation"`
	Confidence      float64             `json:"confidence"`
	Tier            IndicatorTier       `json:"tier"`
	Description     string              `json:"description"`
	Recommendations []string            `json:"recommendations"`
}
