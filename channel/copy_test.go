package channel_test

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/channel"
)

func TestCopyToLimit(t *testing.T) {
	ctx := testContext(t)
	src := channel.New(true)
	src.WriteFully(ctx, []byte("0123456789"))
	dst := channel.New(false)

	n, err := src.CopyTo(ctx, dst, 5)
	if n != 5 || err != nil {
		t.Fatalf("CopyTo = (%d, %v), want (5, nil)", n, err)
	}
	got := make([]byte, 5)
	if err := dst.ReadFully(ctx, got); err != nil {
		t.Fatal(err)
	}
	if string(got) != "01234" {
		t.Errorf("dst = %q", got)
	}
	if src.AvailableForRead() != 5 {
		t.Errorf("source left with %d bytes, want 5", src.AvailableForRead())
	}
	if dst.IsClosedForWrite() {
		t.Error("CopyTo must not close the destination")
	}
}

func TestCopyToStopsAtEOF(t *testing.T) {
	ctx := testContext(t)
	src, _ := channel.FromBytes([]byte("short"), 0, 5)
	dst := channel.New(true)
	n, err := src.CopyTo(ctx, dst, 100)
	if n != 5 || err != nil {
		t.Fatalf("CopyTo = (%d, %v)", n, err)
	}
	if _, err := src.CopyTo(ctx, dst, -1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("negative limit = %v", err)
	}
}

func TestJoinToCloseOnEnd(t *testing.T) {
	ctx := testContext(t)
	data := pattern(20_000, 11)
	src, _ := channel.FromBytes(data, 0, len(data))
	dst := channel.New(true, channel.WithCapacity(64))

	var g errgroup.Group
	g.Go(func() error { return src.JoinTo(ctx, dst, true) })
	var got []byte
	g.Go(func() error {
		var err error
		got, err = io.ReadAll(dst)
		return err
	})
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !dst.IsClosedForRead() || dst.Cause() != nil {
		t.Error("destination should be cleanly closed and drained")
	}
}

func TestJoinToWithoutClose(t *testing.T) {
	ctx := testContext(t)
	src, _ := channel.FromBytes([]byte("abc"), 0, 3)
	dst := channel.New(false)
	if err := src.JoinTo(ctx, dst, false); err != nil {
		t.Fatal(err)
	}
	if dst.IsClosedForWrite() {
		t.Error("destination closed although closeOnEnd is false")
	}
	if dst.AvailableForRead() != 3 {
		t.Errorf("dst AvailableForRead = %d", dst.AvailableForRead())
	}
}

func TestCopyToPropagatesSourceFailure(t *testing.T) {
	ctx := testContext(t)
	cause := errors.New("source broke")
	src := channel.New(true)
	dst := channel.New(true)

	go func() {
		src.WriteFully(ctx, []byte("abc"))
		time.Sleep(10 * time.Millisecond)
		src.CloseWithError(cause)
	}()

	n, err := src.CopyTo(ctx, dst, 100)
	if err != cause {
		t.Fatalf("CopyTo err = %v, want source cause", err)
	}
	if n > 3 {
		t.Errorf("copied %d bytes", n)
	}
	if dst.Cause() != cause {
		t.Errorf("destination cause = %v, want source cause", dst.Cause())
	}
}

func TestJoinToDestinationCancelled(t *testing.T) {
	ctx := testContext(t)
	src := channel.New(true)
	dst := channel.New(true, channel.WithCapacity(4))
	src.WriteFully(ctx, pattern(64, 0))

	errc := make(chan error, 1)
	go func() { errc <- src.JoinTo(ctx, dst, true) }()
	eventually(t, func() bool { return dst.AvailableForRead() == 4 }, "destination to fill")
	dst.CloseRead(nil)

	if err := receive(t, errc); err != api.ErrChannelCancelled {
		t.Errorf("JoinTo = %v, want ErrChannelCancelled", err)
	}
}
