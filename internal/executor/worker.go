package executor

import (
	"context"
	"fmt"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// worker is the processing loop of a single worker.
func (e *Executor) worker(ctx context.Context, readyChan <-chan Job, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for j := range readyChan {
		workerLogger := logger.With("workerID", workerID, "jobID", j.ID)

		if err := ctx.Err(); err != nil {
			workerLogger.Debug("Skipping job, run was cancelled.")
			e.record(j.ID, fmt.Errorf("skipped: %w", err))
			e.wg.Done()
			continue
		}

		workerLogger.Debug("Worker picked up job.")
		if err := j.Run(ctxlog.WithLogger(ctx, workerLogger)); err != nil {
			workerLogger.Error("Job failed.", "error", err)
			e.record(j.ID, err)
			cancel()
			e.wg.Done()
			continue
		}

		workerLogger.Debug("Job succeeded.")
		e.wg.Done()
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
