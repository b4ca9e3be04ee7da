package messaging

import (
	"context"
	"log/slog"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
)

// Runner manages multiple workers and runs them concurrently.
type Runner struct {
	workers []Worker
	handler MessageHandler
}

func NewRunner(workers []Worker, handler MessageHandler) *Runner {
	return &Runner{
		workers: workers,
		handler: handler,
	}
}

// Start runs all workers and returns when ctx is cancelled or any worker
// fails.
func (r *Runner) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, w := range r.workers {
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("Worker panic recovered",
						"worker_idx", i,
						"panic", rec,
						"stack", string(debug.Stack()))
				}
			}()
			return w.Start(ctx, r.handler)
		})
	}

	return g.Wait()
}

// Close closes all workers.
func (r *Runner) Close() error {
	for i, w := range r.workers {
		if err := w.Close(); err != nil {
			slog.Error("Failed to close worker", "worker_idx", i, slog.Any("error", err))
		}
	}
	return nil
}
