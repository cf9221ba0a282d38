// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/mxlib/internal/logging"
)

// Runner executes job batches on a bounded worker pool.
type Runner struct {
	// Workers caps concurrent jobs; <= 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Element selects the matrix element type; empty means Float64.
	Element Element
	// Logger receives run and job events; nil discards them.
	Logger *slog.Logger
}

// Run executes jobs and returns a report with one Result per job, in input order.
//
// Jobs run concurrently, each on its own operands. A failing job does not
// stop the others; its error is recorded in its Result and joined into the
// returned error. When ctx is cancelled, jobs that have not started are
// recorded as cancelled. The report is returned even when err != nil.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Report, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	elem, err := ParseElement(string(r.Element))
	if err != nil {
		return nil, err
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := r.Logger
	if log == nil {
		log = logging.Discard()
	}
	log = logging.WithComponent(log, "driver")

	report := &Report{
		RunID:     uuid.New(),
		Element:   elem,
		Workers:   workers,
		CPUs:      runtime.NumCPU(),
		StartedAt: time.Now().UTC(),
		Results:   make([]Result, len(jobs)),
	}
	log.Info("run started",
		slog.String("run_id", report.RunID.String()),
		slog.String("element", string(elem)),
		slog.Int("workers", workers),
		slog.Int("jobs", len(jobs)))

	errs := make([]error, len(jobs))
	p := pool.New().WithContext(ctx).WithMaxGoroutines(workers)
	for i, job := range jobs {
		p.Go(func(ctx context.Context) error {
			res := Result{Job: job.Name, Op: job.Op}
			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("job %s: %w", job.Name, err)
				res.Error = err.Error()
				report.Results[i] = res
				return nil
			}

			start := time.Now()
			out, err := execute(elem, job)
			res.Elapsed = time.Since(start)
			if err != nil {
				errs[i] = fmt.Errorf("job %s: %w", job.Name, err)
				res.Error = err.Error()
				log.Error("job failed", slog.String("job", job.String()), slog.Any("err", err))
			} else {
				res.Rows, res.Cols, res.Checksum = out.rows, out.cols, out.checksum
				log.Debug("job done",
					slog.String("job", job.String()),
					slog.Duration("elapsed", res.Elapsed))
			}
			report.Results[i] = res

			return nil
		})
	}
	_ = p.Wait() // tasks never return errors; failures live in errs

	report.Elapsed = time.Since(report.StartedAt)
	runErr := errors.Join(errs...)
	log.Info("run finished",
		slog.String("run_id", report.RunID.String()),
		slog.Duration("elapsed", report.Elapsed),
		slog.Bool("ok", runErr == nil))

	return report, runErr
}
