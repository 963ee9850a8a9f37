// Package analysis holds the tunable parameters shared by the correlation
// engine, the early-warning system and the backtesting framework.
package analysis

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/student-analysis-system/internal/platform/envutil"
)

// Config carries every tunable the core accepts from its callers. Zero
// values mean "use the default"; Normalize fills them in.
type Config struct {
	// MinCorrelation is the minimum |pearson r| for an edge to be kept.
	MinCorrelation float64 `yaml:"min_correlation" json:"min_correlation"`

	// MinSampleSize is the minimum paired-sample count for an edge.
	MinSampleSize int `yaml:"min_sample_size" json:"min_sample_size"`

	// TrainTestSplit is the fraction of the population used for training
	// during backtests.
	TrainTestSplit float64 `yaml:"train_test_split" json:"train_test_split"`

	// CriticalRiskMultiplier scales a risk threshold down to the cutoff
	// below which a warning is critical rather than high.
	CriticalRiskMultiplier float64 `yaml:"critical_risk_multiplier" json:"critical_risk_multiplier"`

	// ThresholdPercentiles are the candidate cut points for threshold
	// discovery.
	ThresholdPercentiles []int `yaml:"threshold_percentiles" json:"threshold_percentiles"`

	// MinStudentsForThreshold is the minimum sample behind a trained
	// threshold.
	MinStudentsForThreshold int `yaml:"min_students_for_threshold" json:"min_students_for_threshold"`

	// Workers bounds the parallel fan-out of discovery, training and
	// backtesting.
	Workers int `yaml:"workers" json:"workers"`

	// Seed drives the backtest shuffle. 0 means DefaultSeed, so backtests
	// are reproducible unless the caller opts into entropy.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultSeed keeps backtests reproducible when no seed is configured.
const DefaultSeed = 42

// Default returns the fully-populated default configuration.
func Default() Config {
	cfg := Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.MinCorrelation == 0 {
		c.MinCorrelation = 0.3
	}
	if c.MinSampleSize == 0 {
		c.MinSampleSize = 30
	}
	if c.TrainTestSplit == 0 {
		c.TrainTestSplit = 0.7
	}
	if c.CriticalRiskMultiplier == 0 {
		c.CriticalRiskMultiplier = 0.85
	}
	if len(c.ThresholdPercentiles) == 0 {
		for p := 10; p <= 90; p += 5 {
			c.ThresholdPercentiles = append(c.ThresholdPercentiles, p)
		}
	}
	if c.MinStudentsForThreshold == 0 {
		c.MinStudentsForThreshold = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
}

// Validate rejects configurations that would make a whole run meaningless.
func (c Config) Validate() error {
	if c.MinCorrelation < 0 || c.MinCorrelation > 1 {
		return fmt.Errorf("config: min_correlation %v out of [0,1]", c.MinCorrelation)
	}
	if c.TrainTestSplit <= 0 || c.TrainTestSplit >= 1 {
		return fmt.Errorf("config: train_test_split %v out of (0,1)", c.TrainTestSplit)
	}
	if c.MinSampleSize < 3 {
		return fmt.Errorf("config: min_sample_size %d below statistical floor of 3", c.MinSampleSize)
	}
	if c.CriticalRiskMultiplier <= 0 || c.CriticalRiskMultiplier >= 1 {
		return fmt.Errorf("config: critical_risk_multiplier %v out of (0,1)", c.CriticalRiskMultiplier)
	}
	for _, p := range c.ThresholdPercentiles {
		if p <= 0 || p >= 100 {
			return fmt.Errorf("config: threshold percentile %d out of (0,100)", p)
		}
	}
	return nil
}

// Load reads a YAML config file, applies environment overrides, normalizes
// and validates.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.MinCorrelation = envutil.Float64("ANALYSIS_MIN_CORRELATION", c.MinCorrelation)
	c.MinSampleSize = envutil.Int("ANALYSIS_MIN_SAMPLE_SIZE", c.MinSampleSize)
	c.TrainTestSplit = envutil.Float64("ANALYSIS_TRAIN_TEST_SPLIT", c.TrainTestSplit)
	c.CriticalRiskMultiplier = envutil.Float64("ANALYSIS_CRITICAL_RISK_MULTIPLIER", c.CriticalRiskMultiplier)
	c.MinStudentsForThreshold = envutil.Int("ANALYSIS_MIN_STUDENTS_FOR_THRESHOLD", c.MinStudentsForThreshold)
	c.Workers = envutil.Int("ANALYSIS_WORKERS", c.Workers)
	c.Seed = envutil.Int64("ANALYSIS_SEED", c.Seed)
}
