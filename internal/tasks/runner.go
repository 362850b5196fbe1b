// Package tasks runs fire-and-forget background jobs and keeps a pollable
// in-memory record of their progress. Jobs are not persisted: a process
// restart silently loses anything in flight, which is the accepted trade
// for operator-triggered, infrequent work.
package tasks

import (
	"fmt"
	"sync"

	"log/slog"

	"github.com/google/uuid"

	"github.com/apx-soporte/warranty-tracker/constants"
)

// ReportFunc streams progress back into the job record. Percent is clamped
// to [0,100] and never decreases; message replaces the previous one.
type ReportFunc func(percent int, message string)

// WorkFunc is the body of a background job. The returned payload becomes
// the job result on success; the returned error becomes the terminal error
// message.
type WorkFunc func(jobID string, report ReportFunc) (any, error)

// Snapshot is the atomically-copied state a poller sees.
type Snapshot struct {
	ID      string              `json:"id"`
	Status  constants.JobStatus `json:"status"`
	Percent int                 `json:"percent"`
	Message string              `json:"message"`
	Result  any                 `json:"result,omitempty"`
}

type job struct {
	status  constants.JobStatus
	percent int
	message string
	result  any
}

// Runner owns the job registry. One Runner per process; the registry lock
// is held only for map mutations, never across I/O.
type Runner struct {
	mu     sync.RWMutex
	jobs   map[string]*job
	logger *slog.Logger
}

func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		jobs:   make(map[string]*job),
		logger: logger,
	}
}

// Submit registers a fresh job and starts fn on its own goroutine. It
// returns immediately; the caller tracks the job through Poll.
func (r *Runner) Submit(fn WorkFunc) string {
	id := uuid.NewString()

	r.mu.Lock()
	r.jobs[id] = &job{status: constants.JobStatusRunning}
	r.mu.Unlock()

	r.logger.Info("job submitted", "job_id", id)
	go r.run(id, fn)
	return id
}

func (r *Runner) run(id string, fn WorkFunc) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("job panicked", "job_id", id, "panic", p)
			r.update(id, func(j *job) {
				j.status = constants.JobStatusError
				j.message = fmt.Sprintf("internal error: %v", p)
			})
		}
	}()

	report := func(percent int, message string) {
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		r.update(id, func(j *job) {
			if percent > j.percent {
				j.percent = percent
			}
			j.message = message
		})
	}

	result, err := fn(id, report)
	if err != nil {
		r.logger.Warn("job failed", "job_id", id, "error", err)
		r.update(id, func(j *job) {
			j.status = constants.JobStatusError
			j.message = err.Error()
		})
		return
	}

	r.logger.Info("job finished", "job_id", id)
	r.update(id, func(j *job) {
		j.status = constants.JobStatusDone
		j.percent = 100
		j.result = result
	})
}

// update merges a partial mutation into the job record. Unknown ids and
// already-terminal jobs are tolerated as no-ops.
func (r *Runner) update(id string, apply func(*job)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok || j.status.Terminal() {
		return
	}
	apply(j)
}

// Poll returns the current snapshot. An unknown id yields a well-formed
// not_found snapshot, never an error.
func (r *Runner) Poll(id string) Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return Snapshot{ID: id, Status: constants.JobStatusNotFound}
	}
	return Snapshot{
		ID:      id,
		Status:  j.status,
		Percent: j.percent,
		Message: j.message,
		Result:  j.result,
	}
}
