package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mxlib/internal/config"
	"github.com/katalvlaran/mxlib/internal/driver"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	require.Equal(t, 0, cfg.Workers)
	require.Equal(t, driver.Float64, cfg.ElementType())
	require.Equal(t, config.OutputText, cfg.Output)
	require.True(t, cfg.Sample)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, config.DefaultJobs(), cfg.Jobs)

	jobs := cfg.DriverJobs()
	require.Len(t, jobs, 3)
	require.Equal(t, driver.OpAdd, jobs[0].Op)
	require.Equal(t, "four+four", jobs[2].Name)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mxdemo.yaml")
	const doc = `
workers: 3
element: int32
output: yaml
sample: false
log:
  level: debug
  format: json
jobs:
  - name: prod
    op: mul
    rows: 2
    inner: 3
    cols: 4
    lhs: 1
    rhs: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Workers)
	require.Equal(t, driver.Int32, cfg.ElementType())
	require.Equal(t, config.OutputYAML, cfg.Output)
	require.False(t, cfg.Sample)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, []driver.Job{
		{Name: "prod", Op: driver.OpMul, Rows: 2, Inner: 3, Cols: 4, LHS: 1, RHS: 2},
	}, cfg.DriverJobs())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MXDEMO_WORKERS", "7")
	t.Setenv("MXDEMO_LOG_LEVEL", "warn")

	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Workers)
	require.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Element: "float64",
			Output:  config.OutputText,
			Log:     config.LogConfig{Level: "info", Format: "text"},
			Jobs:    config.DefaultJobs(),
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"negative workers", func(c *config.Config) { c.Workers = -1 }},
		{"element", func(c *config.Config) { c.Element = "uint8" }},
		{"output", func(c *config.Config) { c.Output = "csv" }},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"job name", func(c *config.Config) { c.Jobs[0].Name = "" }},
		{"duplicate", func(c *config.Config) { c.Jobs[1].Name = c.Jobs[0].Name }},
		{"job op", func(c *config.Config) { c.Jobs[0].Op = "div" }},
		{"job dims", func(c *config.Config) { c.Jobs[0].Rows = 0 }},
		{"mul inner", func(c *config.Config) { c.Jobs[0].Op = "mul"; c.Jobs[0].Inner = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}
