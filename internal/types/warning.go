package types

import "time"

// RiskLevel is the ordinal severity scale used by warnings, risk factors and
// the per-student roll-up.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// AtRisk reports whether the level counts as an at-risk prediction.
func (r RiskLevel) AtRisk() bool {
	return r == RiskHigh || r == RiskCritical
}

// Warning flags one component score that fell below its trained risk
// threshold.
type Warning struct {
	Component ComponentIdentifier `json:"component"`
	Score     float64             `json:"score"`
	Threshold float64             `json:"threshold"`
	Severity  RiskLevel           `json:"severity"`
	Message   string              `json:"message"`
}

// RiskFactor grades the size of the gap between a flagged score and its
// threshold.
type RiskFactor struct {
	Component ComponentIdentifier `json:"component"`
	Gap       float64             `json:"gap"`
	GapRatio  float64             `json:"gap_ratio"`
	Severity  RiskLevel           `json:"severity"`
}

// Intervention is one recommended action derived from a student's warnings.
type Intervention struct {
	Subject     string `json:"subject,omitempty"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

const (
	InterventionIntensiveSmallGroup = "intensive_small_group"
	InterventionTargetedTutoring    = "targeted_tutoring"
	InterventionDailyPractice       = "daily_practice"
)

// EarlyWarningReport is the full early-warning output for one student.
type EarlyWarningReport struct {
	ReportID      string         `json:"report_id"`
	StudentID     string         `json:"student_id"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Warnings      []Warning      `json:"warnings"`
	RiskFactors   []RiskFactor   `json:"risk_factors"`
	Growth        []GrowthMetric `json:"growth,omitempty"`
	OverallRisk   RiskLevel      `json:"overall_risk"`
	Interventions []Intervention `json:"interventions"`
}
