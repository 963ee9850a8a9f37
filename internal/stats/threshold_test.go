package stats

import (
	"errors"
	"math"
	"testing"
)

func TestConfusionCounts_ExactF1(t *testing.T) {
	c := ConfusionCounts{TP: 8, FP: 2, FN: 2}
	if p := c.Precision(); p != 0.8 {
		t.Fatalf("expected precision 0.8, got %v", p)
	}
	if r := c.Recall(); r != 0.8 {
		t.Fatalf("expected recall 0.8, got %v", r)
	}
	if f1 := c.F1(); math.Abs(f1-0.8) > 1e-12 {
		t.Fatalf("expected f1 0.8, got %v", f1)
	}
}

func TestConfusionCounts_EmptyIsZeroNotNaN(t *testing.T) {
	var c ConfusionCounts
	for name, v := range map[string]float64{
		"precision": c.Precision(),
		"recall":    c.Recall(),
		"accuracy":  c.Accuracy(),
		"f1":        c.F1(),
	} {
		if math.IsNaN(v) || v != 0 {
			t.Fatalf("%s: expected 0 on empty counts, got %v", name, v)
		}
	}
}

func TestBestThresholdByF1_SeparablePopulation(t *testing.T) {
	// At-risk students score 300-395, the rest 600-645. The 70th percentile
	// of the 30 scores is exactly 600, the clean separating cut.
	var scores []float64
	var atRisk []bool
	for i := 0; i < 20; i++ {
		scores = append(scores, 300+float64(i*5))
		atRisk = append(atRisk, true)
	}
	for i := 0; i < 10; i++ {
		scores = append(scores, 600+float64(i*5))
		atRisk = append(atRisk, false)
	}

	res, err := BestThresholdByF1(scores, atRisk, DefaultPercentiles(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.F1 != 1 {
		t.Fatalf("expected perfect F1 on separable data, got %v", res.F1)
	}
	if res.Threshold <= 395 || res.Threshold > 600 {
		t.Fatalf("threshold %v should fall between the clusters", res.Threshold)
	}
	if res.SampleSize != 30 {
		t.Fatalf("expected sample size 30, got %d", res.SampleSize)
	}
}

func TestBestThresholdByF1_ThresholdIsInScoreSpace(t *testing.T) {
	scores := []float64{200, 300, 400, 500, 600, 700, 800, 900, 1000, 1100}
	atRisk := []bool{true, true, true, false, false, false, false, false, false, false}
	res, err := BestThresholdByF1(scores, atRisk, DefaultPercentiles(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Threshold < 200 || res.Threshold > 1100 {
		t.Fatalf("threshold %v is outside score space", res.Threshold)
	}
}

func TestBestThresholdByF1_InsufficientData(t *testing.T) {
	_, err := BestThresholdByF1([]float64{1, 2}, []bool{true, false}, nil, 10)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestBestThresholdByF1_SingleClassDoesNotFail(t *testing.T) {
	scores := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	atRisk := make([]bool, 10)
	res, err := BestThresholdByF1(scores, atRisk, DefaultPercentiles(), 5)
	if err != nil {
		t.Fatalf("unexpected error on single-class data: %v", err)
	}
	if res.F1 != 0 {
		t.Fatalf("expected F1=0 with no positives, got %v", res.F1)
	}
}

func TestAccuracyAtThreshold(t *testing.T) {
	scores := []float64{10, 20, 80, 90}
	atRisk := []bool{true, true, false, false}
	if acc := AccuracyAtThreshold(50, scores, atRisk); acc != 1 {
		t.Fatalf("expected accuracy 1, got %v", acc)
	}
	if acc := AccuracyAtThreshold(5, scores, atRisk); acc != 0.5 {
		t.Fatalf("expected accuracy 0.5, got %v", acc)
	}
}

func TestDefaultPercentiles(t *testing.T) {
	ps := DefaultPercentiles()
	if len(ps) != 17 || ps[0] != 10 || ps[len(ps)-1] != 90 {
		t.Fatalf("unexpected default percentiles: %v", ps)
	}
}
