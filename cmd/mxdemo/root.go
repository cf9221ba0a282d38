// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"workers":    "workers",
	"element":    "element",
	"output":     "output",
	"sample":     "sample",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// newRootCmd builds the command tree. Each call owns a fresh viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "mxdemo",
		Short: "Run concurrent matrix jobs and report on them",
		Long: `mxdemo drives the mxlib matrix package.

Configuration sources, highest priority first:
  1. Command-line flags (--workers, --element, ...)
  2. MXDEMO_* environment variables (MXDEMO_WORKERS, MXDEMO_LOG_LEVEL, ...)
  3. The file given with --config (YAML, TOML or JSON)
  4. Built-in defaults

Examples:
  mxdemo run
  mxdemo run --element int64 --workers 4 --output yaml
  mxdemo run --config jobs.yaml --log-level debug`,
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(v), newVersionCmd())

	return root
}

// bindFlags binds every known flag in fs to its configuration key on v.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	return nil
}
