// Package config defines the runtime knobs for a solver run, their
// defaults, validation, and YAML loading.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validation errors surfaced before any training step executes.
var (
	// ErrInvalidDomain reports a degenerate domain (xmin >= xmax).
	ErrInvalidDomain = errors.New("config: invalid domain")

	// ErrInvalidArchitecture reports an unusable layer-width list.
	ErrInvalidArchitecture = errors.New("config: invalid architecture")
)

// Config captures every recognized option of a solver run.
type Config struct {
	// Domain and boundary conditions
	XMin      float64 `yaml:"xmin"`
	XMax      float64 `yaml:"xmax"`
	LeftHead  float64 `yaml:"left_head"`
	RightHead float64 `yaml:"right_head"`

	// Discretization and architecture
	CollocationPoints int   `yaml:"collocation_points"`
	LayerWidths       []int `yaml:"layer_widths"` // full list, inputs and outputs included
	EvalPoints        int   `yaml:"eval_points"`  // held-out evenly spaced verification grid

	// Optimization
	Optimizer      string  `yaml:"optimizer"` // "adam" (default) or "sgd"
	LearningRate   float64 `yaml:"learning_rate"`
	Epochs         int     `yaml:"epochs"`
	PDEWeight      float64 `yaml:"pde_weight"`
	BoundaryWeight float64 `yaml:"boundary_weight"`

	// Reproducibility
	SampleSeed int64 `yaml:"sample_seed"`
	InitSeed   int64 `yaml:"init_seed"`

	// Reporting
	LogEvery int `yaml:"log_every"`
}

// Default returns the reference configuration: the unit domain with
// heads 1.0 → 0.9, 100 collocation points, one hidden layer of width
// 50, Adam at 0.01 for 5000 epochs.
func Default() Config {
	return Config{
		XMin:              0.0,
		XMax:              1.0,
		LeftHead:          1.0,
		RightHead:         0.9,
		CollocationPoints: 100,
		LayerWidths:       []int{1, 50, 1},
		EvalPoints:        20,
		Optimizer:         "adam",
		LearningRate:      0.01,
		Epochs:            5000,
		PDEWeight:         1.0,
		BoundaryWeight:    1.0,
		SampleSeed:        1,
		InitSeed:          42,
		LogEvery:          500,
	}
}

// Overrides captures CLI-supplied values; zero values leave the
// underlying config untouched.
type Overrides struct {
	Epochs            int
	LearningRate      float64
	CollocationPoints int
	LayerWidths       []int
	Optimizer         string
	LogEvery          int
	SampleSeed        int64
	InitSeed          int64
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Epochs > 0 {
		c.Epochs = o.Epochs
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.CollocationPoints > 0 {
		c.CollocationPoints = o.CollocationPoints
	}
	if len(o.LayerWidths) > 0 {
		c.LayerWidths = o.LayerWidths
	}
	if o.Optimizer != "" {
		c.Optimizer = o.Optimizer
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.SampleSeed != 0 {
		c.SampleSeed = o.SampleSeed
	}
	if o.InitSeed != 0 {
		c.InitSeed = o.InitSeed
	}
}

// Validate verifies the config is runnable. Domain and architecture
// problems fail fast here, before any network is built or trained.
func (c *Config) Validate() error {
	if c.XMin >= c.XMax {
		return fmt.Errorf("%w: xmin (%v) must be less than xmax (%v)", ErrInvalidDomain, c.XMin, c.XMax)
	}
	if len(c.LayerWidths) < 2 {
		return fmt.Errorf("%w: need at least two layer widths, got %v", ErrInvalidArchitecture, c.LayerWidths)
	}
	for i, w := range c.LayerWidths {
		if w <= 0 {
			return fmt.Errorf("%w: width %d at position %d must be positive", ErrInvalidArchitecture, w, i)
		}
	}
	if c.LayerWidths[0] != 1 || c.LayerWidths[len(c.LayerWidths)-1] != 1 {
		return fmt.Errorf("%w: the network maps one coordinate to one head value, widths %v must start and end with 1",
			ErrInvalidArchitecture, c.LayerWidths)
	}
	if c.CollocationPoints <= 0 {
		return fmt.Errorf("config: collocation_points must be > 0 (got %d)", c.CollocationPoints)
	}
	if c.EvalPoints < 2 {
		return fmt.Errorf("config: eval_points must be >= 2 (got %d)", c.EvalPoints)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("config: learning_rate must be > 0 (got %v)", c.LearningRate)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("config: epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.PDEWeight < 0 || c.BoundaryWeight < 0 {
		return fmt.Errorf("config: loss weights must be non-negative (got %v, %v)", c.PDEWeight, c.BoundaryWeight)
	}
	switch c.Optimizer {
	case "", "adam", "sgd":
	default:
		return fmt.Errorf("config: unknown optimizer %q (want adam or sgd)", c.Optimizer)
	}
	return nil
}

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
