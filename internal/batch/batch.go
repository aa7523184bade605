// Package batch decodes many report files in parallel. Every document
// owns its own line stream, cursor and settings accumulator, and the
// static tables are read-only, so workers share nothing mutable; one
// file failing does not stop the others.
package batch

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Job names one input file to decode.
type Job struct {
	Path string
}

// Outcome is the per-file result of a batch run.
type Outcome struct {
	Path  string
	RunID string
	Err   error
}

// ProcessFunc decodes one file. The logger it receives carries the
// file path and a per-run correlation ID.
type ProcessFunc func(ctx context.Context, path string, log *zap.Logger) error

// Run fans jobs out over workers goroutines (one per CPU when workers
// is zero or negative) and collects every file's outcome. Decode
// failures are recorded, not propagated: the returned error reflects
// only context cancellation.
func Run(ctx context.Context, jobs []Job, workers int, fn ProcessFunc, log *zap.Logger) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]Outcome, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Path: job.Path, Err: err}
				return err
			}
			runID := uuid.NewString()
			flog := log.With(zap.String("file", job.Path), zap.String("run_id", runID))
			err := fn(ctx, job.Path, flog)
			if err != nil {
				flog.Error("decode failed", zap.Error(err))
			} else {
				flog.Info("decode complete")
			}
			outcomes[i] = Outcome{Path: job.Path, RunID: runID, Err: err}
			return nil
		})
	}

	err := g.Wait()
	return outcomes, err
}

func newRunID() string {
	return uuid.NewString()
}

// Failed counts the outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
