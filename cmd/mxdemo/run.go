// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mxlib/internal/config"
	"github.com/katalvlaran/mxlib/internal/driver"
	"github.com/katalvlaran/mxlib/internal/logging"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured job batch",
		Long: `Run prints the 3x3 sample matrix (unless --sample=false), then executes
every configured job on a bounded worker pool and writes a report.

Without a job list in the config file, three additions on disjoint
operands are run: one+two, one+three and four+four.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			return runBatch(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&cfgFile, "config", "c", "", "config file (yaml, toml or json)")
	fs.IntP("workers", "w", 0, "concurrent jobs (0 = GOMAXPROCS)")
	fs.StringP("element", "e", string(driver.Float64), "element type (float64, float32, int64, int32, int)")
	fs.StringP("output", "o", config.OutputText, "report format (text, yaml)")
	fs.Bool("sample", true, "print the 3x3 sample matrix first")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", logging.FormatText, "log format (text, json)")

	return cmd
}

// runBatch executes cfg's jobs and writes the sample and report to stdout.
func runBatch(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if cfg.Sample {
		s, err := driver.Sample(cfg.ElementType())
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
	}

	runner := &driver.Runner{
		Workers: cfg.Workers,
		Element: cfg.ElementType(),
		Logger:  logger,
	}
	report, runErr := runner.Run(cmd.Context(), cfg.DriverJobs())
	if report == nil {
		return runErr
	}

	var werr error
	switch cfg.Output {
	case config.OutputYAML:
		werr = report.WriteYAML(out)
	default:
		werr = report.WriteText(out)
	}
	if werr != nil {
		return fmt.Errorf("write report: %w", werr)
	}

	return runErr
}
