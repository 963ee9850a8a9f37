package stats

import (
	"math"
	"testing"
)

func TestPearsonR_PerfectPositive(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	if r := PearsonR(x, y); math.Abs(r-1) > 1e-12 {
		t.Fatalf("expected r=1, got %v", r)
	}
}

func TestPearsonR_PerfectNegative(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{8, 6, 4, 2}
	if r := PearsonR(x, y); math.Abs(r+1) > 1e-12 {
		t.Fatalf("expected r=-1, got %v", r)
	}
}

func TestPearsonR_ZeroVarianceIsZeroNotNaN(t *testing.T) {
	x := []float64{5, 5, 5, 5}
	y := []float64{1, 2, 3, 4}
	r := PearsonR(x, y)
	if math.IsNaN(r) {
		t.Fatalf("zero variance produced NaN")
	}
	if r != 0 {
		t.Fatalf("expected r=0 for zero variance, got %v", r)
	}
}

func TestPearsonR_DegenerateInputs(t *testing.T) {
	if r := PearsonR(nil, nil); r != 0 {
		t.Fatalf("expected 0 for empty input, got %v", r)
	}
	if r := PearsonR([]float64{1, 2}, []float64{1}); r != 0 {
		t.Fatalf("expected 0 for length mismatch, got %v", r)
	}
	if r := PearsonR([]float64{1}, []float64{2}); r != 0 {
		t.Fatalf("expected 0 for single pair, got %v", r)
	}
}

func TestSpearmanR_MonotonicNonlinear(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{1, 8, 27, 64, 125}
	if r := SpearmanR(x, y); math.Abs(r-1) > 1e-12 {
		t.Fatalf("expected spearman r=1 for monotonic data, got %v", r)
	}
}

func TestRanks_AveragesTies(t *testing.T) {
	got := Ranks([]float64{10, 20, 20, 30})
	want := []float64{1, 2.5, 2.5, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRanks_AllTied(t *testing.T) {
	got := Ranks([]float64{7, 7, 7})
	for i, r := range got {
		if r != 2 {
			t.Fatalf("rank[%d]: expected 2, got %v", i, r)
		}
	}
}
