package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/analysis/backtest"
	"github.com/yungbote/student-analysis-system/internal/analysis/correlation"
	"github.com/yungbote/student-analysis-system/internal/analysis/earlywarning"
	"github.com/yungbote/student-analysis-system/internal/platform/envutil"
	"github.com/yungbote/student-analysis-system/internal/platform/logger"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// The analysis binary runs the full pipeline over an already-parsed
// population file (the system's own JSON interchange format) and writes the
// artifacts the reporting collaborators consume: the correlation model, the
// trained thresholds, the predictive indicators and the backtest results.
func main() {
	logMode := envutil.String("LOG_MODE", "development")
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	configPath := envutil.String("ANALYSIS_CONFIG", "")
	populationPath := envutil.String("ANALYSIS_POPULATION_FILE", "population.json")
	outDir := envutil.String("ANALYSIS_OUTPUT_DIR", "artifacts")
	prettyJSON := envutil.Bool("ANALYSIS_PRETTY_JSON", true)

	cfg, err := analysis.Load(configPath)
	if err != nil {
		log.Fatal("Loading config failed", "error", err)
	}

	population, err := readPopulation(populationPath)
	if err != nil {
		log.Fatal("Reading population failed", "path", populationPath, "error", err)
	}
	log.Info("Population loaded", "students", len(population), "path", populationPath)

	ctx := context.Background()

	engine := correlation.NewEngine(log, cfg)
	model, err := engine.BuildModel(ctx, population)
	if err != nil {
		log.Fatal("Correlation discovery failed", "error", err)
	}
	log.Info("Correlation model built", "run_id", model.RunID, "maps", len(model.Maps))

	system := earlywarning.NewSystem(log, cfg)
	if err := system.Train(ctx, population); err != nil {
		log.Fatal("Early warning training failed", "error", err)
	}

	validator := backtest.NewValidator(log, cfg)
	results, err := validator.Validate(ctx, population)
	if err != nil {
		log.Fatal("Backtest failed", "error", err)
	}

	indicators := earlywarning.DiscoverIndicators(model.Maps)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatal("Creating output dir failed", "dir", outDir, "error", err)
	}
	artifacts := map[string]any{
		"correlation_model.json":  model,
		"thresholds.json":         system.Thresholds(),
		"indicators.json":         indicators,
		"validation_results.json": results,
	}
	for name, artifact := range artifacts {
		if err := writeArtifact(filepath.Join(outDir, name), artifact, prettyJSON); err != nil {
			log.Fatal("Writing artifact failed", "artifact", name, "error", err)
		}
	}
	log.Info("Pipeline complete",
		"output_dir", outDir,
		"indicators", len(indicators),
		"accuracy", results.Accuracy,
		"f1", results.F1Score,
	)
}

func readPopulation(path string) ([]types.StudentLongitudinalData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var population []types.StudentLongitudinalData
	if err := json.Unmarshal(raw, &population); err != nil {
		return nil, fmt.Errorf("parse population: %w", err)
	}
	// Re-sort through the constructor so the (year, grade) ordering
	// invariant holds no matter how the file was produced.
	for i, s := range population {
		student := types.NewStudent(s.ExternalID, s.Assessments)
		student.Demographics = s.Demographics
		population[i] = student
	}
	return population, nil
}

func writeArtifact(path string, artifact any, pretty bool) error {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = json.MarshalIndent(artifact, "", "  ")
	} else {
		raw, err = json.Marshal(artifact)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}
