package pool_test

import (
	"sync"
	"testing"

	"github.com/momentics/hioload-io/pool"
)

func TestChunkPoolReuse(t *testing.T) {
	p := pool.NewChunkPool(64, 4, nil)
	c1 := p.Borrow()
	c1.Write([]byte("residual"))
	p.Recycle(c1)

	c2 := p.Borrow()
	if c2 != c1 {
		t.Fatal("expected recycled chunk to be reused")
	}
	if c2.ReadRemaining() != 0 || c2.WriteRemaining() != 64 {
		t.Errorf("recycled chunk not reset: read=%d write=%d", c2.ReadRemaining(), c2.WriteRemaining())
	}
	if c2.Next() != nil {
		t.Error("recycled chunk kept its link")
	}
}

func TestChunkPoolBound(t *testing.T) {
	const bound = 3
	p := pool.NewChunkPool(16, bound, nil)

	var chunks []*pool.Chunk
	for i := 0; i < 10; i++ {
		chunks = append(chunks, p.Borrow())
	}
	for _, c := range chunks {
		p.Recycle(c)
	}
	st := p.Stats()
	if st.Free != bound {
		t.Errorf("Free = %d, want %d", st.Free, bound)
	}
	if st.Discarded != 10-bound {
		t.Errorf("Discarded = %d, want %d", st.Discarded, 10-bound)
	}
	if st.InUse() != 0 {
		t.Errorf("InUse = %d, want 0", st.InUse())
	}
}

func TestChunkPoolDoubleRecycleIgnored(t *testing.T) {
	p := pool.NewChunkPool(16, 8, nil)
	c := p.Borrow()
	p.Recycle(c)
	p.Recycle(c)
	if got := p.Stats().Free; got != 1 {
		t.Fatalf("Free = %d, want 1", got)
	}
	a, b := p.Borrow(), p.Borrow()
	if a == b {
		t.Fatal("same chunk handed out twice")
	}
}

func TestChunkPoolConcurrent(t *testing.T) {
	p := pool.NewChunkPool(32, 16, nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c := p.Borrow()
				c.Write([]byte{byte(i)})
				p.Recycle(c)
			}
		}()
	}
	wg.Wait()
	st := p.Stats()
	if st.Free > 16 {
		t.Errorf("pool grew past bound: %d", st.Free)
	}
	if st.Borrowed != 8000 {
		t.Errorf("Borrowed = %d, want 8000", st.Borrowed)
	}
	if st.InUse() != 0 {
		t.Errorf("InUse = %d, want 0", st.InUse())
	}
}

func TestNativeAllocatorReleasesDiscards(t *testing.T) {
	alloc := pool.NewNativeAllocator(nil)
	p := pool.NewChunkPool(4096, 1, alloc)
	a, b := p.Borrow(), p.Borrow()
	a.Write([]byte("native"))
	if string(a.Readable()) != "native" {
		t.Fatalf("Readable = %q", a.Readable())
	}
	p.Recycle(a)
	p.Recycle(b)
	if got := p.Stats().Discarded; got != 1 {
		t.Fatalf("Discarded = %d, want 1", got)
	}
	// One region stays pooled; the discarded one must have been released.
	if alloc.Mapped() > 1 {
		t.Errorf("Mapped = %d, want <= 1", alloc.Mapped())
	}
}

func TestDefaultPoolShared(t *testing.T) {
	if pool.Default() != pool.Default() {
		t.Fatal("Default must return a single shared pool")
	}
	if pool.Default().ChunkSize() != pool.DefaultChunkSize {
		t.Errorf("ChunkSize = %d", pool.Default().ChunkSize())
	}
}
