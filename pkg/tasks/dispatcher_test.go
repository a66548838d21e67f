package tasks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	"github.com/chainsafe/social-wallet-api/pkg/config"
)

func newTestDispatcher(workers, queueSize int) *Dispatcher {
	return NewDispatcher(&config.TasksConfig{
		Workers:   workers,
		QueueSize: queueSize,
		Timeout:   time.Second,
	}, zap.NewNop())
}

func waitTimeout(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for tasks")
	}
}

func TestDispatcher_RunsTasks(t *testing.T) {
	d := newTestDispatcher(3, 16)
	d.Start()
	defer d.Stop()

	var (
		wg  sync.WaitGroup
		ran int32
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		ok := d.Enqueue("test-run", func(ctx context.Context) error {
			defer wg.Done()
			if _, hasDeadline := ctx.Deadline(); !hasDeadline {
				t.Error("expected task context to carry the configured timeout")
			}
			atomic.AddInt32(&ran, 1)
			return nil
		})
		if !ok {
			t.Fatalf("Enqueue() #%d rejected", i)
		}
	}

	waitTimeout(t, &wg)
	if got := atomic.LoadInt32(&ran); got != 10 {
		t.Fatalf("expected 10 tasks to run, got %d", got)
	}
}

func TestDispatcher_FailuresAndPanicsAreContained(t *testing.T) {
	d := newTestDispatcher(1, 8)
	d.Start()
	defer d.Stop()

	failedBefore := testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("test-fail", StatusFailed))

	var wg sync.WaitGroup
	wg.Add(3)
	d.Enqueue("test-fail", func(context.Context) error {
		defer wg.Done()
		return errors.New("downstream unavailable")
	})
	d.Enqueue("test-fail", func(context.Context) error {
		defer wg.Done()
		panic("boom")
	})
	var ranAfter bool
	d.Enqueue("test-after-fail", func(context.Context) error {
		defer wg.Done()
		ranAfter = true
		return nil
	})

	waitTimeout(t, &wg)
	if !ranAfter {
		t.Fatal("worker should survive failing and panicking tasks")
	}

	// a single worker runs tasks in order, so both failures are counted by now
	failedAfter := testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("test-fail", StatusFailed))
	if failedAfter-failedBefore != 2 {
		t.Fatalf("expected 2 failed tasks, got %v", failedAfter-failedBefore)
	}
}

func TestDispatcher_FullQueueDrops(t *testing.T) {
	// workers not started, so the queue fills up
	d := newTestDispatcher(1, 1)

	droppedBefore := testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("test-full", StatusDropped))

	noop := func(context.Context) error { return nil }
	if !d.Enqueue("test-full", noop) {
		t.Fatal("first Enqueue() should fit in the queue")
	}
	if d.Enqueue("test-full", noop) {
		t.Fatal("second Enqueue() should be dropped")
	}

	droppedAfter := testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("test-full", StatusDropped))
	if droppedAfter-droppedBefore != 1 {
		t.Fatalf("expected 1 dropped task, got %v", droppedAfter-droppedBefore)
	}
	d.Stop()
}

func TestDispatcher_StopCancelsAndRejects(t *testing.T) {
	d := newTestDispatcher(1, 4)
	d.Start()

	started := make(chan struct{})
	var cancelled int32
	d.Enqueue("test-long", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		atomic.StoreInt32(&cancelled, 1)
		return ctx.Err()
	})

	<-started
	d.Stop()
	d.Stop()

	if atomic.LoadInt32(&cancelled) != 1 {
		t.Fatal("expected running task to observe cancellation")
	}
	if d.Enqueue("test-long", func(context.Context) error { return nil }) {
		t.Fatal("Enqueue() after Stop() should be rejected")
	}
}
