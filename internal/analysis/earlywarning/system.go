// Package earlywarning trains per-component risk thresholds from observed
// outcomes and flags incoming students whose scores fall below them.
package earlywarning

import (
	"context"
	"errors"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/analysis/correlation"
	"github.com/yungbote/student-analysis-system/internal/platform/logger"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// ErrNotTrained is returned when warnings are requested before a training
// run has completed.
var ErrNotTrained = errors.New("earlywarning: system has not been trained")

// System holds the trained threshold state. It is the one mutable piece of
// the core: Train replaces the threshold list wholesale under the write
// lock, GenerateWarnings reads under the read lock. Queries issued during a
// training run block until it finishes rather than seeing partial state.
type System struct {
	log *logger.Logger
	cfg analysis.Config

	mu         sync.RWMutex
	thresholds []types.ComponentThreshold
	trained    bool
}

func NewSystem(log *logger.Logger, cfg analysis.Config) *System {
	if log == nil {
		log = logger.Nop()
	}
	cfg.Normalize()
	return &System{
		log: log.With("component", "EarlyWarningSystem"),
		cfg: cfg,
	}
}

// Train classifies the population's outcomes, discovers a best-F1 risk
// threshold per component, and atomically installs the resulting threshold
// list. Components with too few scored students are skipped, not errors; an
// empty population is a hard error. Retraining discards prior thresholds
// only on successful completion.
func (s *System) Train(ctx context.Context, population []types.StudentLongitudinalData) error {
	if len(population) == 0 {
		return analysis.ErrEmptyPopulation
	}

	outcomes := ClassifyOutcomes(population)
	universe := correlation.DiscoverComponents(population)
	s.log.Info("training early warning system",
		"students", len(population),
		"struggling", len(outcomes.Struggling),
		"proficient", len(outcomes.Proficient),
		"components", len(universe),
	)

	var (
		mu      sync.Mutex
		trained []types.ComponentThreshold
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for _, component := range universe {
		component := component
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			threshold, ok := s.trainComponent(component, population, outcomes)
			if !ok {
				return nil
			}
			mu.Lock()
			trained = append(trained, threshold)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(trained, func(i, j int) bool {
		if trained[i].Confidence != trained[j].Confidence {
			return trained[i].Confidence > trained[j].Confidence
		}
		return trained[i].Component.Less(trained[j].Component)
	})

	s.mu.Lock()
	s.thresholds = trained
	s.trained = true
	s.mu.Unlock()

	s.log.Info("training complete", "thresholds", len(trained))
	return nil
}

// Trained reports whether a training run has completed.
func (s *System) Trained() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trained
}

// Thresholds returns a copy of the trained threshold list, ordered by
// descending confidence.
func (s *System) Thresholds() []types.ComponentThreshold {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ComponentThreshold, len(s.thresholds))
	copy(out, s.thresholds)
	return out
}
