// Package executor runs independent jobs on a bounded pool of workers.
//
// It is used for the output stage of a run: every country file, the shared
// focuses, localisation and events are written concurrently. Composition
// itself never goes through the executor.
package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/specialistvlad/focusgridgo/internal/ctxlog"
)

// Job is a single unit of work.
type Job struct {
	ID  string
	Run func(ctx context.Context) error
}

// Executor runs jobs with at most numWorkers of them in flight.
type Executor struct {
	numWorkers int
	wg         sync.WaitGroup

	mu     sync.Mutex
	failed []failure
}

type failure struct {
	id  string
	err error
}

// New creates an executor. A non-positive worker count means one worker.
func New(numWorkers int) *Executor {
	return &Executor{numWorkers: max(numWorkers, 1)}
}

// Run executes every job and waits for all of them. The first failure
// cancels the context handed to the remaining jobs; jobs not yet started
// are skipped. The returned error wraps the first real failure.
func (e *Executor) Run(ctx context.Context, jobs []Job) error {
	logger := ctxlog.FromContext(ctx)
	if len(jobs) == 0 {
		logger.Debug("No jobs to execute.")
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mu.Lock()
	e.failed = nil
	e.mu.Unlock()

	readyChan := make(chan Job, len(jobs))
	for _, j := range jobs {
		readyChan <- j
	}
	close(readyChan)
	e.wg.Add(len(jobs))

	workers := min(e.numWorkers, len(jobs))
	logger.Debug("Starting worker pool.", "workers", workers, "jobs", len(jobs))
	for i := 0; i < workers; i++ {
		go e.worker(runCtx, readyChan, cancel, i)
	}
	e.wg.Wait()
	logger.Debug("All jobs completed.")

	return e.result()
}

func (e *Executor) record(id string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failed = append(e.failed, failure{id: id, err: err})
}

// result reports the failed jobs. Jobs that only saw the cancellation are
// symptoms, not causes, unless nothing else failed.
func (e *Executor) result() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.failed) == 0 {
		return nil
	}

	var ids []string
	var rootCause error
	for _, f := range e.failed {
		if errors.Is(f.err, context.Canceled) {
			continue
		}
		ids = append(ids, f.id)
		if rootCause == nil {
			rootCause = f.err
		}
	}
	if rootCause == nil {
		return fmt.Errorf("execution cancelled: %w", e.failed[0].err)
	}
	return fmt.Errorf("execution failed for %s: %w", strings.Join(ids, ", "), rootCause)
}
