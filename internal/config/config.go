// SPDX-License-Identifier: MIT

// Package config loads mxdemo settings from defaults, an optional config
// file, MXDEMO_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/mxlib/internal/driver"
	"github.com/katalvlaran/mxlib/internal/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. MXDEMO_WORKERS.
const EnvPrefix = "MXDEMO"

// Output formats accepted by Config.Output.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full mxdemo configuration.
type Config struct {
	Workers int         `mapstructure:"workers"`
	Element string      `mapstructure:"element"`
	Output  string      `mapstructure:"output"`
	Sample  bool        `mapstructure:"sample"`
	Log     LogConfig   `mapstructure:"log"`
	Jobs    []JobConfig `mapstructure:"jobs"`
}

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// JobConfig is the file form of a driver.Job.
type JobConfig struct {
	Name  string  `mapstructure:"name"`
	Op    string  `mapstructure:"op"`
	Rows  int     `mapstructure:"rows"`
	Inner int     `mapstructure:"inner"`
	Cols  int     `mapstructure:"cols"`
	LHS   float64 `mapstructure:"lhs"`
	RHS   float64 `mapstructure:"rhs"`
}

// SetDefaults registers every scalar key on v so env overrides resolve.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("workers", 0)
	v.SetDefault("element", string(driver.Float64))
	v.SetDefault("output", OutputText)
	v.SetDefault("sample", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
}

// DefaultJobs is the built-in batch: three additions on disjoint operands.
func DefaultJobs() []JobConfig {
	return []JobConfig{
		{Name: "one+two", Op: "add", Rows: 1000, Cols: 1000, LHS: 110000, RHS: 110000},
		{Name: "one+three", Op: "add", Rows: 1000, Cols: 1000, LHS: 110000, RHS: 110000},
		{Name: "four+four", Op: "add", Rows: 800, Cols: 800, LHS: 30000, RHS: 30000},
	}
}

// Load resolves the configuration held by v.
//
// When file is non-empty it is read first (format by extension). Environment
// variables with EnvPrefix override file values; flags bound on v override both.
// An empty job list is replaced by DefaultJobs.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if len(cfg.Jobs) == 0 {
		cfg.Jobs = DefaultJobs()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := driver.ParseElement(c.Element); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalidConfig, OutputText, OutputYAML, c.Output)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q",
			ErrInvalidConfig, logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	seen := make(map[string]struct{}, len(c.Jobs))
	for i, j := range c.Jobs {
		if j.Name == "" {
			return fmt.Errorf("%w: jobs[%d]: name is required", ErrInvalidConfig, i)
		}
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("%w: jobs[%d]: duplicate name %q", ErrInvalidConfig, i, j.Name)
		}
		seen[j.Name] = struct{}{}

		op, err := driver.ParseOp(j.Op)
		if err != nil {
			return fmt.Errorf("%w: jobs[%d]: %w", ErrInvalidConfig, i, err)
		}
		if j.Rows <= 0 || j.Cols <= 0 || (op == driver.OpMul && j.Inner <= 0) {
			return fmt.Errorf("%w: jobs[%d] %q: dimensions must be positive", ErrInvalidConfig, i, j.Name)
		}
	}

	return nil
}

// DriverJobs converts the configured jobs; Validate must have passed.
func (c *Config) DriverJobs() []driver.Job {
	jobs := make([]driver.Job, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		op, _ := driver.ParseOp(j.Op)
		jobs = append(jobs, driver.Job{
			Name: j.Name, Op: op,
			Rows: j.Rows, Inner: j.Inner, Cols: j.Cols,
			LHS: j.LHS, RHS: j.RHS,
		})
	}

	return jobs
}

// ElementType returns the parsed element type; Validate must have passed.
func (c *Config) ElementType() driver.Element {
	e, _ := driver.ParseElement(c.Element)
	return e
}
