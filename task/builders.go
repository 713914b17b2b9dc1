// File: task/builders.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package task

import (
	"context"

	"github.com/momentics/hioload-io/channel"
)

// Writer creates a channel and starts fn as its attached producer. When fn
// returns the channel is closed with fn's error (nil closes it cleanly).
func Writer(ctx context.Context, autoFlush bool, fn func(ctx context.Context, ch *channel.ByteChannel) error, opts ...channel.Option) (*channel.ByteChannel, *Job) {
	ch := channel.New(autoFlush, opts...)
	job := Go(ctx, func(ctx context.Context) error {
		err := fn(ctx, ch)
		ch.CloseWithError(err)
		return err
	})
	ch.Attach(job)
	return ch, job
}

// Reader starts fn as a consumer of src. If fn fails, src is cancelled from
// the read side with that error so the producer stops.
func Reader(ctx context.Context, src *channel.ByteChannel, fn func(ctx context.Context, ch *channel.ByteChannel) error) *Job {
	return Go(ctx, func(ctx context.Context) error {
		err := fn(ctx, src)
		if err != nil {
			src.CloseRead(err)
		}
		return err
	})
}
