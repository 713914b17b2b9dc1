// File: api/job.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Job is an external concurrent unit whose lifecycle is coupled to a channel.
// Cancel must be safe to call more than once and from any goroutine.
type Job interface {
	// Cancel requests termination, recording cause as the reason.
	Cancel(cause error)

	// Done is closed once the job has finished.
	Done() <-chan struct{}

	// Err returns the job's terminal error, or nil if it completed cleanly
	// or has not finished yet.
	Err() error
}
