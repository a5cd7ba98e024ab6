// Package config holds the ambient, non-domain configuration every run
// is layered over: log level, an optional wall-clock deadline for the
// knapsack forward pass, and a worker count for intersector's optional
// concurrent mode. It is intentionally small — every domain decision
// (ages, budget, file paths) belongs to driver.Config instead, since
// that data changes per-run while this changes per-deployment.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the ambient, deployment-level configuration layer.
type Config struct {
	LogLevel string        `yaml:"-"`
	Deadline time.Duration `yaml:"-"`
	Workers  int           `yaml:"-"`
}

// yamlConfig mirrors Config's shape but spells Deadline as a
// time.ParseDuration-compatible string (e.g. "30s"), since time.Duration
// has no native YAML decoding and yaml.v3 would otherwise only accept a
// raw integer count of nanoseconds.
type yamlConfig struct {
	LogLevel string `yaml:"log_level"`
	Deadline string `yaml:"deadline"`
	Workers  int    `yaml:"workers"`
}

// Default returns the zero-configuration behavior: info logging, no
// deadline, and sequential (single-worker) intersector execution.
func Default() Config {
	return Config{
		LogLevel: "info",
		Deadline: 0,
		Workers:  1,
	}
}

// Load reads a YAML configuration file at path and overlays it onto
// Default(). A missing file is not an error; Load returns the default
// configuration unchanged so a deployment without a config file still
// runs.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	raw := yamlConfig{LogLevel: cfg.LogLevel, Workers: cfg.Workers}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	cfg.LogLevel = raw.LogLevel
	cfg.Workers = raw.Workers
	if raw.Deadline != "" {
		d, err := time.ParseDuration(raw.Deadline)
		if err != nil {
			return cfg, fmt.Errorf("config: parsing %s: deadline %q: %w", path, raw.Deadline, err)
		}
		cfg.Deadline = d
	}
	return cfg, nil
}
