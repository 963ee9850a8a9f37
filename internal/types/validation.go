package types

import "time"

// ConfusionMatrix tallies backtest predictions against observed outcomes.
// "Positive" means predicted (or actually) at risk.
type ConfusionMatrix struct {
	TruePositives  int `json:"true_positives"`
	TrueNegatives  int `json:"true_negatives"`
	FalsePositives int `json:"false_positives"`
	FalseNegatives int `json:"false_negatives"`
}

// Total returns the number of tallied predictions.
func (m ConfusionMatrix) Total() int {
	return m.TruePositives + m.TrueNegatives + m.FalsePositives + m.FalseNegatives
}

// PredictionResult is one student's backtest comparison.
type PredictionResult struct {
	StudentID       string    `json:"student_id"`
	PredictedAtRisk bool      `json:"predicted_at_risk"`
	ActualAtRisk    bool      `json:"actual_at_risk"`
	RiskLevel       RiskLevel `json:"risk_level"`
}

// ValidationResults summarizes one backtest run. All ratios are guarded: a
// zero denominator yields 0, never NaN.
type ValidationResults struct {
	RunID           string          `json:"run_id"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Seed            int64           `json:"seed"`
	TrainTestSplit  float64         `json:"train_test_split"`
	TrainSize       int             `json:"train_size"`
	TestSize        int             `json:"test_size"`
	Accuracy        float64         `json:"accuracy"`
	Precision       float64         `json:"precision"`
	Recall          float64         `json:"recall"`
	F1Score         float64         `json:"f1_score"`
	ConfusionMatrix ConfusionMatrix `json:"confusion_matrix"`
	SampleSize      int             `json:"sample_size"`
}
