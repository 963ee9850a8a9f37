// Package backtest validates the early-warning model by training it on part
// of the population and scoring its predictions on the rest.
package backtest

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/analysis/earlywarning"
	"github.com/yungbote/student-analysis-system/internal/platform/logger"
	"github.com/yungbote/student-analysis-system/internal/stats"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// Validator runs the train/predict/score loop. The shuffle is driven by the
// configured seed, so two runs over the same population with the same
// configuration produce identical results.
type Validator struct {
	log *logger.Logger
	cfg analysis.Config
}

func NewValidator(log *logger.Logger, cfg analysis.Config) *Validator {
	if log == nil {
		log = logger.Nop()
	}
	cfg.Normalize()
	return &Validator{
		log: log.With("component", "BacktestValidator"),
		cfg: cfg,
	}
}

// Validate shuffles the population with the configured seed, splits it at
// the train/test fraction, trains a fresh early-warning system on the
// training slice, and predicts each test student from their first-year data
// alone. Predictions run in parallel over the shared trained state; the
// merge order is irrelevant since the confusion matrix is a sum.
func (v *Validator) Validate(ctx context.Context, population []types.StudentLongitudinalData) (types.ValidationResults, error) {
	if len(population) == 0 {
		return types.ValidationResults{}, analysis.ErrEmptyPopulation
	}
	if v.cfg.TrainTestSplit <= 0 || v.cfg.TrainTestSplit >= 1 {
		return types.ValidationResults{}, fmt.Errorf("backtest: split %v out of (0,1): %w", v.cfg.TrainTestSplit, analysis.ErrInvalidSplit)
	}

	shuffled := make([]types.StudentLongitudinalData, len(population))
	copy(shuffled, population)
	rng := rand.New(rand.NewSource(v.cfg.Seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	trainSize := int(float64(len(shuffled)) * v.cfg.TrainTestSplit)
	if trainSize < 1 || trainSize >= len(shuffled) {
		return types.ValidationResults{}, fmt.Errorf("backtest: population of %d cannot be split at %.2f: %w", len(shuffled), v.cfg.TrainTestSplit, analysis.ErrInvalidSplit)
	}
	trainSet, testSet := shuffled[:trainSize], shuffled[trainSize:]

	v.log.Info("starting backtest",
		"population", len(shuffled),
		"train", len(trainSet),
		"test", len(testSet),
		"seed", v.cfg.Seed,
	)

	system := earlywarning.NewSystem(v.log, v.cfg)
	if err := system.Train(ctx, trainSet); err != nil {
		return types.ValidationResults{}, fmt.Errorf("backtest: training failed: %w", err)
	}

	predictions, err := v.predictAll(ctx, system, testSet)
	if err != nil {
		return types.ValidationResults{}, err
	}

	counts := tally(predictions)
	results := types.ValidationResults{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		Seed:           v.cfg.Seed,
		TrainTestSplit: v.cfg.TrainTestSplit,
		TrainSize:      len(trainSet),
		TestSize:       len(testSet),
		Accuracy:       counts.Accuracy(),
		Precision:      counts.Precision(),
		Recall:         counts.Recall(),
		F1Score:        counts.F1(),
		ConfusionMatrix: types.ConfusionMatrix{
			TruePositives:  counts.TP,
			TrueNegatives:  counts.TN,
			FalsePositives: counts.FP,
			FalseNegatives: counts.FN,
		},
		SampleSize: len(predictions),
	}

	v.log.Info("backtest complete",
		"accuracy", results.Accuracy,
		"precision", results.Precision,
		"recall", results.Recall,
		"f1", results.F1Score,
	)
	return results, nil
}

// predictAll compares each test student's first-year prediction against the
// outcome observed in their later records.
func (v *Validator) predictAll(ctx context.Context, system *earlywarning.System, testSet []types.StudentLongitudinalData) ([]types.PredictionResult, error) {
	var (
		mu          sync.Mutex
		predictions []types.PredictionResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.cfg.Workers)

	for _, student := range testSet {
		student := student
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			report, err := system.GenerateWarnings(student.FirstYearOnly())
			if err != nil {
				return fmt.Errorf("backtest: predicting %s: %w", student.ExternalID, err)
			}
			result := types.PredictionResult{
				StudentID:       student.ExternalID,
				PredictedAtRisk: report.OverallRisk.AtRisk(),
				ActualAtRisk:    earlywarning.RecordsIndicateStruggle(student.AssessmentsAfterYear(student.FirstYear())),
				RiskLevel:       report.OverallRisk,
			}
			mu.Lock()
			predictions = append(predictions, result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return predictions, nil
}

func tally(predictions []types.PredictionResult) stats.ConfusionCounts {
	var c stats.ConfusionCounts
	for _, p := range predictions {
		switch {
		case p.PredictedAtRisk && p.ActualAtRisk:
			c.TP++
		case p.PredictedAtRisk && !p.ActualAtRisk:
			c.FP++
		case !p.PredictedAtRisk && p.ActualAtRisk:
			c.FN++
		default:
			c.TN++
		}
	}
	return c
}
