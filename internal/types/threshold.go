package types

// ComponentThreshold is one trained early-warning cutoff: students scoring
// below RiskThreshold on the component are flagged. SuccessThreshold is
// always RiskThreshold * 1.2. Confidence is the validation accuracy the
// threshold achieved on its holdout slice.
type ComponentThreshold struct {
	Component        ComponentIdentifier `json:"component"`
	RiskThreshold    float64             `json:"risk_threshold"`
	SuccessThreshold float64             `json:"success_threshold"`
	Confidence       float64             `json:"confidence"`
	SampleSize       int                 `json:"sample_size"`
}

// NewComponentThreshold derives the success threshold from the risk
// threshold so the 1.2 ratio invariant cannot drift.
func NewComponentThreshold(component ComponentIdentifier, riskThreshold, confidence float64, sampleSize int) ComponentThreshold {
	return ComponentThreshold{
		Component:        component,
		RiskThreshold:    riskThreshold,
		SuccessThreshold: riskThreshold * 1.2,
		Confidence:       confidence,
		SampleSize:       sampleSize,
	}
}
