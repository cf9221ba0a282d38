// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Result records the outcome of one job.
type Result struct {
	Job      string        `yaml:"job"`
	Op       Op            `yaml:"op"`
	Rows     int           `yaml:"rows"`
	Cols     int           `yaml:"cols"`
	Checksum float64       `yaml:"checksum"`
	Elapsed  time.Duration `yaml:"elapsed"`
	Error    string        `yaml:"error,omitempty"`
}

// OK reports whether the job succeeded.
func (r Result) OK() bool { return r.Error == "" }

// Report summarizes a run.
type Report struct {
	RunID     uuid.UUID     `yaml:"run_id"`
	Element   Element       `yaml:"element"`
	Workers   int           `yaml:"workers"`
	CPUs      int           `yaml:"cpus"`
	StartedAt time.Time     `yaml:"started_at"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Results   []Result      `yaml:"results"`
}

// WriteText writes a human-readable table of the report to w.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s: element=%s workers=%d cpus=%d elapsed=%s\n",
		r.RunID, r.Element, r.Workers, r.CPUs, r.Elapsed.Round(time.Millisecond)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "JOB\tOP\tSHAPE\tCHECKSUM\tELAPSED\tSTATUS")
	for _, res := range r.Results {
		status := "ok"
		if !res.OK() {
			status = res.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%g\t%s\t%s\n",
			res.Job, res.Op, res.Rows, res.Cols, res.Checksum,
			res.Elapsed.Round(time.Microsecond), status)
	}

	return tw.Flush()
}

// WriteYAML encodes the report as a YAML document to w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("driver: encode report: %w", err)
	}

	return enc.Close()
}
