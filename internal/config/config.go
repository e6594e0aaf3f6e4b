package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity = 4
	DefaultPreset   = "cities"
	DefaultWidth    = 80
	DefaultHeight   = 10
)

// Config describes a scripted run against a list of strings.
type Config struct {
	Name     string       `yaml:"name"`
	Capacity int          `yaml:"capacity"`
	Steps    []StepConfig `yaml:"steps"`
	Plot     PlotConfig   `yaml:"plot"`
}

// StepConfig is one operation of a script. Which fields are read depends
// on Op: index for positional operations, value for single items, values
// for add_range, count for reverse_range.
type StepConfig struct {
	Op     string   `yaml:"op"`
	Index  int      `yaml:"index,omitempty"`
	Count  int      `yaml:"count,omitempty"`
	Value  string   `yaml:"value,omitempty"`
	Values []string `yaml:"values,omitempty"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:     "custom",
		Capacity: DefaultCapacity,
		Plot: PlotConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configs the runner could never start. Per-step errors
// such as bad indices are left to the run itself.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("config: capacity must be at least 1, got %d", c.Capacity)
	}
	for i, s := range c.Steps {
		if s.Op == "" {
			return fmt.Errorf("config: step %d has no op", i)
		}
	}
	return nil
}
