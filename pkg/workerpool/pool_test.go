package workerpool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsTasks(t *testing.T) {
	p := New(4)
	defer p.Shutdown()

	var count int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		if err := p.SubmitWait(func() {
			atomic.AddInt32(&count, 1)
			wg.Done()
		}); err != nil {
			t.Fatalf("SubmitWait: %v", err)
		}
	}
	wg.Wait()

	if got := atomic.LoadInt32(&count); got != 20 {
		t.Errorf("expected 20 tasks run, got %d", got)
	}
}

func TestSubmitReturnsErrPoolFull(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	block := make(chan struct{})
	defer close(block)

	// Occupy the single worker, then fill the task buffer.
	p.Submit(func() { <-block }) //nolint:errcheck
	for i := 0; i < 10; i++ {
		if err := p.Submit(func() { <-block }); errors.Is(err, ErrPoolFull) {
			return
		}
	}
	t.Error("expected ErrPoolFull once buffer filled")
}

func TestSubmitAfterShutdown(t *testing.T) {
	p := New(2)
	p.Shutdown()

	if err := p.Submit(func() {}); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}

func TestShutdownWaitsForInFlight(t *testing.T) {
	p := New(2)

	var done int32
	p.SubmitWait(func() { //nolint:errcheck
		time.Sleep(20 * time.Millisecond)
		atomic.StoreInt32(&done, 1)
	})

	p.Shutdown()

	if atomic.LoadInt32(&done) != 1 {
		t.Error("Shutdown returned before in-flight task finished")
	}
}

func TestTaskPanicDoesNotKillWorker(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	p.SubmitWait(func() { panic("boom") }) //nolint:errcheck

	done := make(chan struct{})
	if err := p.SubmitWait(func() { close(done) }); err != nil {
		t.Fatalf("SubmitWait after panic: %v", err)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("worker did not survive a panicking task")
	}
}
