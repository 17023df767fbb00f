package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Weights  Weights  `yaml:"weights"`
	Fuzzy    Fuzzy    `yaml:"fuzzy"`
	Ranking  Ranking  `yaml:"ranking"`
	Query    Query    `yaml:"query"`
	Indexing Indexing `yaml:"indexing"`
}

// Weights assigns a static relevance weight to each indexed field.
type Weights struct {
	Title       float64 `yaml:"title"`
	Keywords    float64 `yaml:"keywords"`
	Category    float64 `yaml:"category"`
	Description float64 `yaml:"description"`
}

// Fuzzy holds the approximate-matching thresholds.
type Fuzzy struct {
	// PrefixSimilarity is the fixed similarity assigned to prefix matches.
	PrefixSimilarity float64 `yaml:"prefixSimilarity"`
	// MinPrefixLength is the minimum query token length for prefix matching.
	MinPrefixLength int `yaml:"minPrefixLength"`
	// SimilarityFloor is the lowest similarity an edit-distance match may
	// contribute; weaker matches are clamped up to it.
	SimilarityFloor float64 `yaml:"similarityFloor"`
}

// Ranking holds result-level thresholds.
type Ranking struct {
	// ScoreFloor excludes records whose accumulated score falls below it,
	// suppressing noise from distance-only matches.
	ScoreFloor float64 `yaml:"scoreFloor"`
}

// Query holds the controller timing parameters.
type Query struct {
	// Debounce is how long the controller waits after a keystroke before
	// computing results.
	Debounce time.Duration `yaml:"debounce"`
}

// Indexing holds index build parameters.
type Indexing struct {
	// PoolSize is the number of workers tokenizing records during a build.
	// Zero means one worker per CPU, capped at the record count.
	PoolSize int `yaml:"poolSize"`
}

// Default returns the configuration the engine ships with.
func Default() *Config {
	return &Config{
		Weights: Weights{
			Title:       5,
			Keywords:    3,
			Category:    2,
			Description: 1,
		},
		Fuzzy: Fuzzy{
			PrefixSimilarity: 0.85,
			MinPrefixLength:  2,
			SimilarityFloor:  0.4,
		},
		Ranking: Ranking{
			ScoreFloor: 0.5,
		},
		Query: Query{
			Debounce: 140 * time.Millisecond,
		},
		Indexing: Indexing{
			PoolSize: 0,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every parameter is usable.
func (c *Config) Validate() error {
	if c.Weights.Title <= 0 || c.Weights.Keywords <= 0 ||
		c.Weights.Category <= 0 || c.Weights.Description <= 0 {
		return fmt.Errorf("%w: field weights must be positive", ErrInvalidConfig)
	}
	if c.Fuzzy.PrefixSimilarity <= 0 || c.Fuzzy.PrefixSimilarity > 1 {
		return fmt.Errorf("%w: prefixSimilarity must be in (0,1]", ErrInvalidConfig)
	}
	if c.Fuzzy.MinPrefixLength < 1 {
		return fmt.Errorf("%w: minPrefixLength must be at least 1", ErrInvalidConfig)
	}
	if c.Fuzzy.SimilarityFloor < 0 || c.Fuzzy.SimilarityFloor > 1 {
		return fmt.Errorf("%w: similarityFloor must be in [0,1]", ErrInvalidConfig)
	}
	if c.Ranking.ScoreFloor < 0 {
		return fmt.Errorf("%w: scoreFloor must not be negative", ErrInvalidConfig)
	}
	if c.Query.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", ErrInvalidConfig)
	}
	if c.Indexing.PoolSize < 0 {
		return fmt.Errorf("%w: poolSize must not be negative", ErrInvalidConfig)
	}
	return nil
}
