package queue_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Austinkuria/E-commerce-Site/pkg/queue"
)

// ─── Job types ────────────────────────────────────────────────────────────────

var confirmations atomic.Int32

type confirmationJob struct {
	OrderID uint
}

func (j *confirmationJob) Handle() error {
	confirmations.Add(1)
	return nil
}

type failJob struct{}

func (j *failJob) Handle() error {
	return errors.New("smtp unreachable")
}

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	_ = cancel
	queue.StartWorkers(ctx, 2)

	queue.Register("*queue_test.confirmationJob", func() queue.Job { return &confirmationJob{} })
	queue.Register("*queue_test.failJob", func() queue.Job { return &failJob{} })
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestDispatchAndProcess(t *testing.T) {
	before := confirmations.Load()

	if err := queue.Dispatch(&confirmationJob{OrderID: 7}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for confirmations.Load() == before {
		select {
		case <-deadline:
			t.Fatal("job was never processed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestFailedJobRetry(t *testing.T) {
	queue.SetMaxRetry(1)
	defer queue.SetMaxRetry(3)

	if err := queue.Dispatch(&failJob{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	// 1 attempt + 1s backoff + slack.
	time.Sleep(2500 * time.Millisecond)

	if len(queue.FailedJobs()) == 0 {
		t.Error("expected at least one failed job")
	}
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func() {
			defer wg.Done()
			queue.Dispatch(&confirmationJob{OrderID: 1}) //nolint:errcheck
		}()
	}
	wg.Wait()
}
