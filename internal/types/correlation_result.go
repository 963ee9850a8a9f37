package types

// CorrelationStrength buckets |r| into the bands the reporting layer shows.
type CorrelationStrength string

const (
	StrengthVeryStrong CorrelationStrength = "very_strong"
	StrengthStrong     CorrelationStrength = "strong"
	StrengthModerate   CorrelationStrength = "moderate"
	StrengthWeak       CorrelationStrength = "weak"
	StrengthNegligible CorrelationStrength = "negligible"
)

// ConfidenceInterval is a 95% interval in r-space.
type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// CorrelationResult is the full statistical comparison of two components
// over a paired student sample. Results are computed once and never mutated.
type CorrelationResult struct {
	Source             ComponentIdentifier `json:"source"`
	Target             ComponentIdentifier `json:"target"`
	PearsonR           float64             `json:"pearson_r"`
	SpearmanR          float64             `json:"spearman_r"`
	RSquared           float64             `json:"r_squared"`
	PValue             float64             `json:"p_value"`
	SampleSize         int                 `json:"sample_size"`
	ConfidenceInterval ConfidenceInterval  `json:"confidence_interval"`
	IsSignificant      bool                `json:"is_significant"`
}

// Strength buckets the absolute Pearson r. Boundaries are inclusive on the
// stronger side: r=0.8 is very strong, r=0.6 is strong, and so on.
func (c CorrelationResult) Strength() CorrelationStrength {
	abs := c.PearsonR
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 0.8:
		return StrengthVeryStrong
	case abs >= 0.6:
		return StrengthStrong
	case abs >= 0.4:
		return StrengthModerate
	case abs >= 0.2:
		return StrengthWeak
	}
	return StrengthNegligible
}

// IsPositive reports the direction of the relationship.
func (c CorrelationResult) IsPositive() bool {
	return c.PearsonR > 0
}
