package channel_test

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/momentics/hioload-io/api"
	"github.com/momentics/hioload-io/channel"
	"github.com/momentics/hioload-io/fake"
	"github.com/momentics/hioload-io/memory"
)

func TestMemoryRoundTrip(t *testing.T) {
	ctx := testContext(t)
	src, err := memory.Allocate(9000)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Free()
	data := pattern(9000, 5)
	window, _ := src.Bytes(0, 9000)
	copy(window, data)

	ch := channel.New(false, channel.WithPool(fake.NewPool(512, 4)), channel.WithCapacity(1024))
	done := make(chan error, 1)
	go func() {
		err := ch.WriteFullyMemory(ctx, src.Memory, 100, 8000)
		ch.Close()
		done <- err
	}()

	dst := memory.Of(make([]byte, 8010))
	if err := ch.ReadFullyMemory(ctx, dst, 10, 8000); err != nil {
		t.Fatalf("ReadFullyMemory: %v", err)
	}
	if err := receive(t, done); err != nil {
		t.Fatalf("WriteFullyMemory: %v", err)
	}
	got, _ := dst.Bytes(10, 8000)
	if diff := cmp.Diff(data[100:8100], got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	head, _ := dst.Bytes(0, 10)
	if diff := cmp.Diff(make([]byte, 10), head); diff != "" {
		t.Error("bytes before offset were touched")
	}
}

func TestMemoryInvalidArgumentsLeaveStateUntouched(t *testing.T) {
	ctx := testContext(t)
	ch, _ := channel.FromBytes([]byte("abcdef"), 0, 6)
	span := memory.Of(make([]byte, 4))

	for _, tc := range []struct{ off, n int64 }{{-1, 1}, {0, -2}, {2, 3}, {1, math.MaxInt64}, {math.MaxInt64, 1}} {
		if _, err := ch.ReadAvailableMemory(ctx, span, tc.off, tc.n); !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("ReadAvailableMemory(%d,%d) = %v", tc.off, tc.n, err)
		}
		if err := ch.ReadFullyMemory(ctx, span, tc.off, tc.n); !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("ReadFullyMemory(%d,%d) = %v", tc.off, tc.n, err)
		}
	}
	if ch.AvailableForRead() != 6 {
		t.Errorf("AvailableForRead = %d, want 6", ch.AvailableForRead())
	}

	w := channel.New(true)
	if _, err := w.WriteAvailableMemory(ctx, span, 3, 2); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("WriteAvailableMemory = %v", err)
	}
	if err := w.WriteFullyMemory(ctx, span, -1, 0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("WriteFullyMemory = %v", err)
	}
	if _, err := w.WriteAvailableMemory(ctx, span, 1, math.MaxInt64); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("WriteAvailableMemory with wrapping length = %v", err)
	}
	if w.TotalBytesWritten() != 0 {
		t.Error("invalid write changed state")
	}
}

func TestReadAvailableMemoryZeroLength(t *testing.T) {
	ctx := testContext(t)
	ch := channel.New(true)
	n, err := ch.ReadAvailableMemory(ctx, memory.Of(make([]byte, 4)), 0, 0)
	if n != 0 || err != nil {
		t.Errorf("zero-length read = (%d, %v), want (0, nil) without waiting", n, err)
	}

	ch.Close()
	if _, err := ch.ReadAvailableMemory(ctx, memory.Of(nil), 0, 0); err != io.EOF {
		t.Errorf("drained zero-length read = %v, want EOF", err)
	}
}

func TestReadAvailableMemoryWaitsForData(t *testing.T) {
	ctx := testContext(t)
	ch := channel.New(true)
	go func() {
		time.Sleep(10 * time.Millisecond)
		ch.WriteFully(ctx, []byte("late"))
	}()

	span := memory.Of(make([]byte, 8))
	n, err := ch.ReadAvailableMemory(ctx, span, 2, 6)
	if err != nil || n == 0 || n > 4 {
		t.Fatalf("ReadAvailableMemory = (%d, %v)", n, err)
	}
	got, _ := span.Bytes(2, n)
	if string(got) != "late"[:n] {
		t.Errorf("got %q", got)
	}
}

func TestWriteAvailableMemoryWaitsForSpace(t *testing.T) {
	ctx := testContext(t)
	ch := channel.New(false, channel.WithCapacity(4))
	src := memory.Of([]byte("abcdefgh"))
	if n, err := ch.WriteAvailableMemory(ctx, src, 0, 4); n != 4 || err != nil {
		t.Fatalf("first write = (%d, %v)", n, err)
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		ch.ReadFully(ctx, make([]byte, 2))
	}()

	n, err := ch.WriteAvailableMemory(ctx, src, 4, 4)
	if err != nil || n == 0 || n > 2 {
		t.Fatalf("second write = (%d, %v), want 1..2 bytes", n, err)
	}
}

func TestReadFullyMemoryShortfall(t *testing.T) {
	ctx := testContext(t)
	ch, _ := channel.FromBytes([]byte("xy"), 0, 2)
	err := ch.ReadFullyMemory(ctx, memory.Of(make([]byte, 5)), 0, 5)
	var short *api.IncompleteReadError
	if !errors.As(err, &short) || short.Required != 5 || short.Available != 2 {
		t.Fatalf("got %v", err)
	}
}
