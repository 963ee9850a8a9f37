package types

import "time"

// TargetCorrelation is one qualifying edge out of a source component:
// the downstream component, the correlation that links them, and the
// confidence the engine assigned (1 - p, clamped to [0,1]).
type TargetCorrelation struct {
	Target      ComponentIdentifier `json:"target"`
	Correlation float64             `json:"correlation"`
	Confidence  float64             `json:"confidence"`
	SampleSize  int                 `json:"sample_size"`
	Result      CorrelationResult   `json:"result"`
}

// CorrelationPath is the single strongest edge out of a source component,
// kept separately so consumers can follow best paths without re-scanning.
type CorrelationPath struct {
	Source                ComponentIdentifier `json:"source"`
	Target                ComponentIdentifier `json:"target"`
	CumulativeCorrelation float64             `json:"cumulative_correlation"`
	Confidence            float64             `json:"confidence"`
}

// ComponentCorrelationMap collects every qualifying downstream correlation
// for one source component, sorted by descending |correlation|.
type ComponentCorrelationMap struct {
	Source        ComponentIdentifier `json:"source"`
	Correlations  []TargetCorrelation `json:"correlations"`
	StrongestPath *CorrelationPath    `json:"strongest_path,omitempty"`
}

// CorrelationModel is the persistable artifact of one full discovery run:
// the maps plus the parameters and provenance the exporter records with
// them.
type CorrelationModel struct {
	RunID          string                    `json:"run_id"`
	GeneratedAt    time.Time                 `json:"generated_at"`
	MinCorrelation float64                   `json:"min_correlation"`
	MinSampleSize  int                       `json:"min_sample_size"`
	PopulationSize int                       `json:"population_size"`
	ComponentCount int                       `json:"component_count"`
	Maps           []ComponentCorrelationMap `json:"maps"`
}
