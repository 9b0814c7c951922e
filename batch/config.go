package batch

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rnashape/shape"
	"github.com/katalvlaran/rnashape/ted"
)

// ErrInvalidConfig is returned for an unusable configuration.
var ErrInvalidConfig = errors.New("batch: invalid config")

// CostConfig holds constant edit costs.
type CostConfig struct {
	Insert  float64 `yaml:"insert"`
	Delete  float64 `yaml:"delete"`
	Relabel float64 `yaml:"relabel"`
}

// Config describes a ranking run.
type Config struct {
	// Workers bounds the number of concurrent distance tasks.
	Workers int `yaml:"workers"`

	// Threshold is the exclusive distance bound for a similarity edge.
	Threshold float64 `yaml:"threshold"`

	// Level reduces every tree to its shape before comparison; 0 disables it.
	Level int `yaml:"level"`

	// Top keeps only the best Top scores; 0 keeps all.
	Top int `yaml:"top"`

	// Unlabeled ignores node roles (relabel cost 0).
	Unlabeled bool `yaml:"unlabeled"`

	Costs CostConfig `yaml:"costs"`
}

// DefaultConfig returns one worker per CPU, threshold 4, no shape reduction,
// unlabeled unit costs.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		Threshold: 4,
		Unlabeled: true,
		Costs:     CostConfig{Insert: 1, Delete: 1, Relabel: 1},
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers=%d", ErrInvalidConfig, c.Workers)
	}
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold=%v", ErrInvalidConfig, c.Threshold)
	}
	if c.Level != 0 {
		if err := shape.Level(c.Level).Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top=%d", ErrInvalidConfig, c.Top)
	}
	if c.Costs.Insert < 0 || c.Costs.Delete < 0 || c.Costs.Relabel < 0 {
		return fmt.Errorf("%w: %w: %+v", ErrInvalidConfig, ted.ErrNegativeCost, c.Costs)
	}

	return nil
}

// EditCosts returns the ted cost functions described by c.
func (c Config) EditCosts() ted.Costs {
	relabel := c.Costs.Relabel
	if c.Unlabeled {
		relabel = 0
	}

	return ted.LabelCosts(c.Costs.Insert, c.Costs.Delete, relabel)
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("batch: read config: %w", err)
	}

	return ParseConfig(data)
}
