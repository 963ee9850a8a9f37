package correlation

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/student-analysis-system/internal/analysis"
	"github.com/yungbote/student-analysis-system/internal/platform/logger"
	"github.com/yungbote/student-analysis-system/internal/stats"
	"github.com/yungbote/student-analysis-system/internal/types"
)

// Engine runs full-population correlation discovery: it enumerates the
// component universe, evaluates every forward-in-time component pair, and
// assembles one correlation map per source with at least one qualifying
// edge. The population is shared read-only across workers; each source's
// map is built independently and merged afterwards.
type Engine struct {
	log      *logger.Logger
	cfg      analysis.Config
	analyzer *Analyzer
}

func NewEngine(log *logger.Logger, cfg analysis.Config) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	cfg.Normalize()
	return &Engine{
		log:      log.With("component", "CorrelationEngine"),
		cfg:      cfg,
		analyzer: NewAnalyzer(log),
	}
}

// DiscoverAll computes every qualifying correlation edge in the population.
// An edge source→target is considered only when target.grade >= source.grade
// and target != source; it is kept only when |r| >= MinCorrelation and the
// paired sample has at least MinSampleSize students. Sources with zero
// qualifying edges are dropped silently. Maps come back sorted by the
// strength of each map's strongest path, pathless maps last.
func (e *Engine) DiscoverAll(ctx context.Context, population []types.StudentLongitudinalData) ([]types.ComponentCorrelationMap, error) {
	if len(population) == 0 {
		return nil, analysis.ErrEmptyPopulation
	}

	universe := DiscoverComponents(population)
	e.log.Info("starting correlation discovery",
		"students", len(population),
		"components", len(universe),
		"min_correlation", e.cfg.MinCorrelation,
		"min_sample_size", e.cfg.MinSampleSize,
	)

	var (
		mu   sync.Mutex
		maps []types.ComponentCorrelationMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)

	for _, source := range universe {
		source := source
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			m, ok := e.mapForSource(source, universe, population)
			if !ok {
				return nil
			}
			mu.Lock()
			maps = append(maps, m)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortMaps(maps)
	e.log.Info("correlation discovery complete", "maps", len(maps))
	return maps, nil
}

// BuildModel runs DiscoverAll and wraps the output as a persistable
// correlation model artifact.
func (e *Engine) BuildModel(ctx context.Context, population []types.StudentLongitudinalData) (types.CorrelationModel, error) {
	maps, err := e.DiscoverAll(ctx, population)
	if err != nil {
		return types.CorrelationModel{}, err
	}
	universe := DiscoverComponents(population)
	return types.CorrelationModel{
		RunID:          uuid.NewString(),
		GeneratedAt:    time.Now().UTC(),
		MinCorrelation: e.cfg.MinCorrelation,
		MinSampleSize:  e.cfg.MinSampleSize,
		PopulationSize: len(population),
		ComponentCount: len(universe),
		Maps:           maps,
	}, nil
}

// mapForSource evaluates every eligible target for one source component.
func (e *Engine) mapForSource(source types.ComponentIdentifier, universe []types.ComponentIdentifier, population []types.StudentLongitudinalData) (types.ComponentCorrelationMap, bool) {
	var edges []types.TargetCorrelation

	for _, target := range universe {
		if target == source || target.Grade < source.Grade {
			continue
		}
		result := e.analyzer.Correlate(source, target, population)
		if result.SampleSize < e.cfg.MinSampleSize {
			continue
		}
		if math.Abs(result.PearsonR) < e.cfg.MinCorrelation {
			continue
		}
		edges = append(edges, types.TargetCorrelation{
			Target:      target,
			Correlation: result.PearsonR,
			Confidence:  stats.Clamp01(1 - result.PValue),
			SampleSize:  result.SampleSize,
			Result:      result,
		})
	}

	if len(edges) == 0 {
		return types.ComponentCorrelationMap{}, false
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return math.Abs(edges[i].Correlation) > math.Abs(edges[j].Correlation)
	})

	strongest := edges[0]
	return types.ComponentCorrelationMap{
		Source:       source,
		Correlations: edges,
		StrongestPath: &types.CorrelationPath{
			Source:                source,
			Target:                strongest.Target,
			CumulativeCorrelation: strongest.Correlation,
			Confidence:            strongest.Confidence,
		},
	}, true
}

// sortMaps orders maps by descending strongest-path strength; maps without
// a path (never produced today, but tolerated) sort last. Ties break on the
// source sort order so runs are deterministic.
func sortMaps(maps []types.ComponentCorrelationMap) {
	sort.SliceStable(maps, func(i, j int) bool {
		pi, pj := maps[i].StrongestPath, maps[j].StrongestPath
		switch {
		case pi == nil && pj == nil:
			return maps[i].Source.Less(maps[j].Source)
		case pi == nil:
			return false
		case pj == nil:
			return true
		}
		si := math.Abs(pi.CumulativeCorrelation)
		sj := math.Abs(pj.CumulativeCorrelation)
		if si != sj {
			return si > sj
		}
		return maps[i].Source.Less(maps[j].Source)
	})
}
