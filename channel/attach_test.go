package channel_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/channel"
	"github.com/momentics/hioload-io/fake"
)

func TestAttachReplacesPreviousJob(t *testing.T) {
	ch := channel.New(true)
	first, second := fake.NewJob(), fake.NewJob()

	ch.Attach(first)
	ch.Attach(second)

	if diff := cmp.Diff([]error{api.ErrJobReplaced}, first.Cancelled(), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("first job cancels (-want +got):\n%s", diff)
	}
	if len(second.Cancelled()) != 0 {
		t.Errorf("second job cancelled: %v", second.Cancelled())
	}

	// A replaced job failing afterwards must not touch the channel.
	first.Finish(errors.New("late failure"))
	ch.Attach(second)
	if ch.IsClosedForWrite() {
		t.Error("replaced job closed the channel")
	}
}

func TestAttachReplacesFinishedJob(t *testing.T) {
	ch := channel.New(true)
	first := fake.NewJob()
	first.Finish(nil)
	ch.Attach(first)
	ch.Attach(fake.NewJob())
	if got := first.Cancelled(); len(got) != 1 || got[0] != api.ErrJobReplaced {
		t.Errorf("finished job cancels = %v", got)
	}
}

func TestCauseCloseCancelsJob(t *testing.T) {
	ch := channel.New(true)
	job := fake.NewJob()
	ch.Attach(job)

	cause := errors.New("consumer gone")
	ch.CloseWithError(cause)
	if got := job.Cancelled(); len(got) != 1 || got[0] != cause {
		t.Errorf("job cancels = %v, want [%v]", got, cause)
	}
}

func TestCloseReadCancelsJob(t *testing.T) {
	ch := channel.New(true)
	job := fake.NewJob()
	ch.Attach(job)
	ch.CloseRead(nil)
	if got := job.Cancelled(); len(got) != 1 || got[0] != api.ErrChannelCancelled {
		t.Errorf("job cancels = %v", got)
	}
}

func TestCleanCloseLeavesJobRunning(t *testing.T) {
	ch := channel.New(true)
	job := fake.NewJob()
	ch.Attach(job)
	ch.Close()
	if got := job.Cancelled(); len(got) != 0 {
		t.Errorf("clean close cancelled job: %v", got)
	}
}

func TestJobFailureClosesChannel(t *testing.T) {
	ctx := testContext(t)
	ch := channel.New(true)
	job := fake.NewJob()
	ch.Attach(job)

	errc := make(chan error, 1)
	go func() { errc <- ch.ReadFully(ctx, make([]byte, 1)) }()

	boom := errors.New("producer crashed")
	job.Finish(boom)

	if err := receive(t, errc); err != boom {
		t.Fatalf("reader got %v, want job failure", err)
	}
	if ch.Cause() != boom {
		t.Errorf("Cause = %v", ch.Cause())
	}
}

func TestJobSuccessLeavesChannelOpen(t *testing.T) {
	ch := channel.New(true)
	job := fake.NewJob()
	ch.Attach(job)
	job.Finish(nil)

	// Attaching a fresh job proves the watcher released the old one quietly.
	next := fake.NewJob()
	ch.Attach(next)
	if ch.IsClosedForWrite() {
		t.Error("successful job closed the channel")
	}
}

func TestAttachToFailedChannel(t *testing.T) {
	cause := errors.New("already failed")
	ch := channel.New(true)
	ch.CloseWithError(cause)

	job := fake.NewJob()
	ch.Attach(job)
	if got := job.Cancelled(); len(got) != 1 || got[0] != cause {
		t.Errorf("job cancels = %v, want immediate cancel with cause", got)
	}
}

func TestAttachToCleanlyClosedChannel(t *testing.T) {
	ch, _ := channel.FromBytes([]byte("x"), 0, 1)
	job := fake.NewJob()
	ch.Attach(job)
	job.Finish(errors.New("ignored"))
	if ch.Cause() != nil {
		t.Errorf("Cause = %v, want nil", ch.Cause())
	}
}
