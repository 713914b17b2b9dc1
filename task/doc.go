// Package task
// Author: momentics <momentics@gmail.com>
//
// Producer and consumer jobs coupled to byte channels. A Job is a goroutine
// with a cancellation token (context.WithCancelCause); Writer and Reader wire
// a job to a channel so failures and cancellation travel in both directions.
package task
