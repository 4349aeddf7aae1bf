package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/simulation"
)

// Config holds the configuration for the game
type Config struct {
	IntervalMillis      int     `json:"interval_millis"`
	RandomDensity       float64 `json:"random_density"`
	Pattern             string  `json:"pattern"` // blinker, glider, pulsar or "random"
	Seed                int64   `json:"seed"`    // 0 picks a time based seed
	MaxGenerations      int     `json:"max_generations"`
	StagnationThreshold int     `json:"stagnation_threshold"`
	AutoRestart         bool    `json:"auto_restart"`
	InjectionCount      int     `json:"injection_count"` // random cells added while briefly stagnant
	UseParallel         bool    `json:"use_parallel"`
	UseBoundedGrid      bool    `json:"use_bounded_grid"`
}

// PatternRandom seeds the grid with a random fill instead of a named pattern
const PatternRandom = "random"

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		IntervalMillis:      simulation.DefaultIntervalMillis,
		RandomDensity:       model.DefaultLiveProbability,
		Pattern:             model.Glider.String(),
		MaxGenerations:      1000,
		StagnationThreshold: 5,
		AutoRestart:         false,
		InjectionCount:      3,
		UseParallel:         false,
		UseBoundedGrid:      true, // Enable active region optimization
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values a user may have written by hand
func (c Config) Validate() error {
	if c.IntervalMillis <= 0 {
		return errors.Wrapf(simulation.ErrInvalidInterval, "[Validate] interval_millis %d", c.IntervalMillis)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density %v not in [0, 1]", c.RandomDensity)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations %d is negative", c.MaxGenerations)
	}
	if c.InjectionCount < 0 {
		return errors.Errorf("[Validate] injection_count %d is negative", c.InjectionCount)
	}
	if c.Pattern == PatternRandom {
		return nil
	}
	if _, err := model.ParsePattern(c.Pattern); err != nil {
		return errors.Wrap(err, "[Validate] pattern")
	}
	return nil
}

// StepFunc returns the stepping strategy the config asks for
func (c Config) StepFunc() model.StepFunc {
	return model.StepFuncFor(c.UseParallel, c.UseBoundedGrid)
}
