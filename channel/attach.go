// File: channel/attach.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Coupling of the channel lifecycle to one producer job.

package channel

import "github.com/momentics/hioload-io/api"

// Attach binds job as the channel's producer. A previously attached job is
// cancelled with api.ErrJobReplaced right away, whatever its state. While
// attached, a job that finishes with an error closes the channel with that
// error, and closing the channel with a cause cancels the job with it.
// Attaching to an already failed channel cancels job immediately.
func (c *ByteChannel) Attach(job api.Job) {
	c.mu.Lock()
	prev := c.job
	if prev == job {
		c.mu.Unlock()
		return
	}
	c.job = job
	cause, closed := c.cause, c.closedWrite
	c.mu.Unlock()

	if prev != nil {
		c.log.Debug("replacing attached job", "channel", c.id)
		prev.Cancel(api.ErrJobReplaced)
	}
	if job == nil {
		return
	}
	if cause != nil {
		job.Cancel(cause)
		return
	}
	if !closed {
		go c.watch(job)
	}
}

// watch closes the channel if job fails while it is still attached.
func (c *ByteChannel) watch(job api.Job) {
	select {
	case <-job.Done():
	case <-c.done:
		return
	}
	c.mu.Lock()
	current := c.job == job
	if current {
		c.job = nil
	}
	c.mu.Unlock()
	if !current {
		return
	}
	if err := job.Err(); err != nil {
		c.log.Debug("attached job failed", "channel", c.id, "error", err)
		c.CloseWithError(err)
	}
}
