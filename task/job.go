// File: task/job.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package task

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/hioload-io/api"
)

// Job runs one function on its own goroutine and exposes its completion.
type Job struct {
	id     uuid.UUID
	ctx    context.Context
	cancel context.CancelCauseFunc
	done   chan struct{}
	err    error
}

var _ api.Job = (*Job)(nil)

// Go starts fn on a new goroutine. fn receives a context that is cancelled
// when the job is cancelled or parent is done.
func Go(parent context.Context, fn func(ctx context.Context) error) *Job {
	ctx, cancel := context.WithCancelCause(parent)
	j := &Job{
		id:     uuid.New(),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go j.run(fn)
	return j
}

func (j *Job) run(fn func(ctx context.Context) error) {
	err := fn(j.ctx)
	if errors.Is(err, context.Canceled) {
		// Report the cancellation reason rather than the generic error.
		if cause := context.Cause(j.ctx); cause != nil {
			err = cause
		}
	}
	j.err = err
	j.cancel(nil)
	close(j.done)
}

// ID returns the job identifier.
func (j *Job) ID() uuid.UUID { return j.id }

// Context returns the job's context.
func (j *Job) Context() context.Context { return j.ctx }

// Cancel requests termination; the first cause wins.
func (j *Job) Cancel(cause error) {
	if cause == nil {
		cause = api.ErrChannelCancelled
	}
	j.cancel(cause)
}

// Done is closed after fn returns.
func (j *Job) Done() <-chan struct{} { return j.done }

// Err returns fn's error once the job has finished, otherwise nil.
func (j *Job) Err() error {
	select {
	case <-j.done:
		return j.err
	default:
		return nil
	}
}

// Wait blocks until the job finishes or ctx is done.
func (j *Job) Wait(ctx context.Context) error {
	select {
	case <-j.done:
		return j.err
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// CancelAfter cancels job with context.DeadlineExceeded after d unless the
// returned stop function is called first.
func CancelAfter(job api.Job, d time.Duration) (stop func() bool) {
	t := time.AfterFunc(d, func() { job.Cancel(context.DeadlineExceeded) })
	return t.Stop
}
