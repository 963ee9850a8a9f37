package correlation

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// correlatedPopulation builds 40 students whose grade-4 D3OP score tracks
// their grade-3 D1OP score with a small deterministic perturbation, giving
// r comfortably above 0.85 by construction.
func correlatedPopulation() []types.StudentLongitudinalData {
	var population []types.StudentLongitudinalData
	for i := 0; i < 40; i++ {
		x := 300 + float64(i*2)
		noise := float64((i * 37) % 11)
		y := 0.5*x + noise
		population = append(population, twoGradeStudent(studentID(i), x, y))
	}
	return population
}

func TestDiscoverAll_EndToEnd(t *testing.T) {
	cfg := analysis.Config{MinCorrelation: 0.3, MinSampleSize: 30}
	engine := NewEngine(nil, cfg)

	maps, err := engine.DiscoverAll(context.Background(), correlatedPopulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(maps) != 1 {
		t.Fatalf("expected exactly one correlation map, got %d", len(maps))
	}

	m := maps[0]
	if m.Source != sourceD1OP {
		t.Fatalf("expected source %s, got %s", sourceD1OP.Key(), m.Source.Key())
	}
	if len(m.Correlations) != 1 {
		t.Fatalf("expected one edge, got %d", len(m.Correlations))
	}
	edge := m.Correlations[0]
	if edge.Target != targetD3OP {
		t.Fatalf("expected target %s, got %s", targetD3OP.Key(), edge.Target.Key())
	}
	if edge.Correlation <= 0.85 {
		t.Fatalf("expected pearson r > 0.85, got %v", edge.Correlation)
	}
	if m.StrongestPath == nil || m.StrongestPath.Target != targetD3OP {
		t.Fatalf("expected strongest path to %s, got %+v", targetD3OP.Key(), m.StrongestPath)
	}
}

func TestDiscoverAll_NeverEmitsBackwardOrSelfEdges(t *testing.T) {
	cfg := analysis.Config{MinCorrelation: 0.01, MinSampleSize: 3}
	engine := NewEngine(nil, cfg)

	maps, err := engine.DiscoverAll(context.Background(), correlatedPopulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range maps {
		for _, edge := range m.Correlations {
			if edge.Target == m.Source {
				t.Fatalf("self edge emitted for %s", m.Source.Key())
			}
			if edge.Target.Grade < m.Source.Grade {
				t.Fatalf("backward edge %s -> %s", m.Source.Key(), edge.Target.Key())
			}
		}
	}
}

func TestDiscoverAll_RespectsFilters(t *testing.T) {
	population := correlatedPopulation()

	tooStrict := NewEngine(nil, analysis.Config{MinCorrelation: 0.999, MinSampleSize: 30})
	maps, err := tooStrict.DiscoverAll(context.Background(), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(maps) != 0 {
		t.Fatalf("expected no maps above correlation floor 0.999, got %d", len(maps))
	}

	tooBig := NewEngine(nil, analysis.Config{MinCorrelation: 0.3, MinSampleSize: 100})
	maps, err = tooBig.DiscoverAll(context.Background(), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(maps) != 0 {
		t.Fatalf("expected no maps with sample floor 100, got %d", len(maps))
	}
}

func TestDiscoverAll_EmptyPopulation(t *testing.T) {
	engine := NewEngine(nil, analysis.Default())
	if _, err := engine.DiscoverAll(context.Background(), nil); err != analysis.ErrEmptyPopulation {
		t.Fatalf("expected ErrEmptyPopulation, got %v", err)
	}
}

func TestDiscoverAll_Idempotent(t *testing.T) {
	cfg := analysis.Config{MinCorrelation: 0.3, MinSampleSize: 30}
	population := correlatedPopulation()

	first, err := NewEngine(nil, cfg).DiscoverAll(context.Background(), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewEngine(nil, cfg).DiscoverAll(context.Background(), population)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("discovery is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDiscoverAll_ConfidenceAlwaysInRange(t *testing.T) {
	cfg := analysis.Config{MinCorrelation: 0.01, MinSampleSize: 3}
	maps, err := NewEngine(nil, cfg).DiscoverAll(context.Background(), correlatedPopulation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, m := range maps {
		for _, edge := range m.Correlations {
			if math.IsNaN(edge.Confidence) || edge.Confidence < 0 || edge.Confidence > 1 {
				t.Fatalf("edge confidence out of range: %v", edge.Confidence)
			}
		}
	}
}

func TestDiscoverComponents(t *testing.T) {
	universe := DiscoverComponents(correlatedPopulation())
	if len(universe) != 2 {
		t.Fatalf("expected 2 components, got %d: %+v", len(universe), universe)
	}
	if universe[0] != sourceD1OP || universe[1] != targetD3OP {
		t.Fatalf("universe not in (grade, component) order: %+v", universe)
	}
}
