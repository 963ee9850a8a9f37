package earlywarning

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// trainingPopulation builds 20 struggling students scoring 300-395 on
// grade-3 D1OP and 20 proficient students scoring 600-695, with outcomes
// carried on a later-year record.
func trainingPopulation() []types.StudentLongitudinalData {
	var population []types.StudentLongitudinalData
	for i := 0; i < 20; i++ {
		population = append(population, outcomeStudent(fmt.Sprintf("risk%02d", i), 300+float64(i*5), "Minimal"))
	}
	for i := 0; i < 20; i++ {
		population = append(population, outcomeStudent(fmt.Sprintf("ok%02d", i), 600+float64(i*5), "Proficient"))
	}
	return population
}

func outcomeStudent(id string, grade3Score float64, outcomeLabel string) types.StudentLongitudinalData {
	return types.NewStudent(id, []types.AssessmentRecord{
		{
			Year: 2023, Grade: 3, Subject: "ELA", Provider: types.ProviderMAAP,
			ComponentScores: map[string]float64{"D1OP": grade3Score},
		},
		{
			Year: 2024, Grade: 4, Subject: "ELA", Provider: types.ProviderMAAP,
			ProficiencyLabel: outcomeLabel,
		},
	})
}

func testConfig() analysis.Config {
	return analysis.Config{
		MinStudentsForThreshold: 20,
		Workers:                 2,
	}
}

func TestClassifyOutcomes(t *testing.T) {
	outcomes := ClassifyOutcomes(trainingPopulation())
	if len(outcomes.Struggling) != 20 || len(outcomes.Proficient) != 20 {
		t.Fatalf("expected 20/20 partition, got %d/%d", len(outcomes.Struggling), len(outcomes.Proficient))
	}
	if !outcomes.IsStruggling("risk00") || outcomes.IsStruggling("ok00") {
		t.Fatalf("partition misassigned students")
	}
}

func TestClassifyOutcomes_UsesLastTwoRecords(t *testing.T) {
	// Struggled years ago, fine in the last two records: proficient.
	recovered := types.NewStudent("recovered", []types.AssessmentRecord{
		{Year: 2021, Grade: 3, Subject: "ELA", Provider: types.ProviderMAAP, ProficiencyLabel: "Minimal"},
		{Year: 2022, Grade: 4, Subject: "ELA", Provider: types.ProviderMAAP, ProficiencyLabel: "Passing"},
		{Year: 2023, Grade: 5, Subject: "ELA", Provider: types.ProviderMAAP, ProficiencyLabel: "Proficient"},
	})
	// Was fine, slipped in the most recent record: struggling.
	slipped := types.NewStudent("slipped", []types.AssessmentRecord{
		{Year: 2022, Grade: 4, Subject: "ELA", Provider: types.ProviderMAAP, ProficiencyLabel: "Passing"},
		{Year: 2023, Grade: 5, Subject: "ELA", Provider: types.ProviderMAAP, ProficiencyLabel: "Below Basic"},
	})
	outcomes := ClassifyOutcomes([]types.StudentLongitudinalData{recovered, slipped})
	if outcomes.IsStruggling("recovered") {
		t.Fatalf("old struggles outside the last two records must not count")
	}
	if !outcomes.IsStruggling("slipped") {
		t.Fatalf("recent slip must count as struggling")
	}
}

func TestTrain_ProducesThreshold(t *testing.T) {
	system := NewSystem(nil, testConfig())
	if system.Trained() {
		t.Fatalf("fresh system must not report trained")
	}
	if err := system.Train(context.Background(), trainingPopulation()); err != nil {
		t.Fatalf("training failed: %v", err)
	}
	if !system.Trained() {
		t.Fatalf("system must report trained after Train")
	}

	thresholds := system.Thresholds()
	if len(thresholds) != 1 {
		t.Fatalf("expected one trained threshold, got %d", len(thresholds))
	}
	thr := thresholds[0]
	if thr.Component.Component != "D1OP" || thr.Component.Grade != 3 {
		t.Fatalf("unexpected component: %+v", thr.Component)
	}
	if thr.RiskThreshold <= 300 || thr.RiskThreshold >= 695 {
		t.Fatalf("risk threshold %v outside score range", thr.RiskThreshold)
	}
	if thr.SuccessThreshold != thr.RiskThreshold*1.2 {
		t.Fatalf("success threshold invariant violated: %v vs %v", thr.SuccessThreshold, thr.RiskThreshold*1.2)
	}
	if thr.Confidence < 0 || thr.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", thr.Confidence)
	}
	if thr.SampleSize != 40 {
		t.Fatalf("expected sample size 40, got %d", thr.SampleSize)
	}
}

func TestTrain_SkipsSmallComponents(t *testing.T) {
	cfg := testConfig()
	cfg.MinStudentsForThreshold = 100
	system := NewSystem(nil, cfg)
	if err := system.Train(context.Background(), trainingPopulation()); err != nil {
		t.Fatalf("training failed: %v", err)
	}
	if got := len(system.Thresholds()); got != 0 {
		t.Fatalf("components below the sample floor must be skipped, got %d thresholds", got)
	}
}

func TestTrain_EmptyPopulation(t *testing.T) {
	system := NewSystem(nil, testConfig())
	if err := system.Train(context.Background(), nil); !errors.Is(err, analysis.ErrEmptyPopulation) {
		t.Fatalf("expected ErrEmptyPopulation, got %v", err)
	}
}

func TestTrain_RetrainReplacesThresholds(t *testing.T) {
	system := NewSystem(nil, testConfig())
	if err := system.Train(context.Background(), trainingPopulation()); err != nil {
		t.Fatalf("training failed: %v", err)
	}
	before := system.Thresholds()

	// Retrain on a shifted population; the threshold must move with it.
	var shifted []types.StudentLongitudinalData
	for i := 0; i < 20; i++ {
		shifted = append(shifted, outcomeStudent(fmt.Sprintf("risk%02d", i), 100+float64(i*5), "Minimal"))
	}
	for i := 0; i < 20; i++ {
		shifted = append(shifted, outcomeStudent(fmt.Sprintf("ok%02d", i), 900+float64(i*5), "Proficient"))
	}
	if err := system.Train(context.Background(), shifted); err != nil {
		t.Fatalf("retraining failed: %v", err)
	}
	after := system.Thresholds()
	if len(after) != 1 {
		t.Fatalf("expected one threshold after retrain, got %d", len(after))
	}
	if before[0].RiskThreshold == after[0].RiskThreshold {
		t.Fatalf("retrain did not replace threshold state")
	}
}

func TestGenerateWarnings_BeforeTraining(t *testing.T) {
	system := NewSystem(nil, testConfig())
	_, err := system.GenerateWarnings(outcomeStudent("S1", 300, ""))
	if !errors.Is(err, ErrNotTrained) {
		t.Fatalf("expected ErrNotTrained, got %v", err)
	}
}
