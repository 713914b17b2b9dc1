// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the core interfaces.

package fake

import (
	"sync"

	"github.com/momentics/hioload-io/api"
)

// Job is a controllable api.Job that records every Cancel call.
type Job struct {
	mu     sync.Mutex
	causes []error
	done   chan struct{}
	once   sync.Once
	err    error

	// FinishOnCancel makes Cancel complete the job with the cancel cause.
	FinishOnCancel bool
}

var _ api.Job = (*Job)(nil)

// NewJob creates a running fake job.
func NewJob() *Job {
	return &Job{done: make(chan struct{})}
}

// Cancel records cause.
func (j *Job) Cancel(cause error) {
	j.mu.Lock()
	j.causes = append(j.causes, cause)
	finish := j.FinishOnCancel
	j.mu.Unlock()
	if finish {
		j.Finish(cause)
	}
}

// Finish completes the job with err. Only the first call has effect.
func (j *Job) Finish(err error) {
	j.once.Do(func() {
		j.mu.Lock()
		j.err = err
		j.mu.Unlock()
		close(j.done)
	})
}

// Done implements api.Job.
func (j *Job) Done() <-chan struct{} { return j.done }

// Err implements api.Job.
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Cancelled returns the recorded cancel causes in call order.
func (j *Job) Cancelled() []error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]error(nil), j.causes...)
}
