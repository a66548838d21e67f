// Package tasks runs best-effort background work outside the request path.
//
// Tasks are fire-and-forget: Enqueue never blocks, a full queue drops the task,
// and task failures are logged and counted but never reported to the enqueuer.
package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	"github.com/chainsafe/social-wallet-api/pkg/config"
)

// Task status labels
const (
	StatusQueued    = "queued"
	StatusDropped   = "dropped"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Func is the unit of background work
type Func func(ctx context.Context) error

// Queue accepts best-effort tasks
type Queue interface {
	Enqueue(name string, fn Func) bool
}

type task struct {
	id   string
	name string
	fn   Func
}

// Dispatcher runs queued tasks on a fixed pool of workers
type Dispatcher struct {
	queue   chan task
	workers int
	timeout time.Duration
	logger  *zap.Logger

	baseCtx context.Context
	cancel  context.CancelFunc

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewDispatcher creates a Dispatcher sized from configuration. Call Start before enqueueing.
func NewDispatcher(cfg *config.TasksConfig, logger *zap.Logger) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		queue:   make(chan task, cfg.QueueSize),
		workers: cfg.Workers,
		timeout: cfg.Timeout,
		logger:  logger,
		baseCtx: ctx,
		cancel:  cancel,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the workers
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		d.logger.Info("Starting task dispatcher",
			zap.Int("workers", d.workers),
			zap.Int("queue_size", cap(d.queue)),
		)
		for i := 0; i < d.workers; i++ {
			d.wg.Add(1)
			go d.work()
		}
	})
}

// Enqueue schedules fn without blocking.
// It returns false when the dispatcher is stopped or the queue is full.
func (d *Dispatcher) Enqueue(name string, fn Func) bool {
	select {
	case <-d.stopCh:
		d.drop(name, "dispatcher stopped")
		return false
	default:
	}

	t := task{id: uuid.NewString(), name: name, fn: fn}
	select {
	case d.queue <- t:
		metrics.TasksTotal.WithLabelValues(name, StatusQueued).Inc()
		metrics.TaskQueueDepth.Inc()
		d.logger.Debug("Task queued", zap.String("task", name), zap.String("task_id", t.id))
		return true
	default:
		d.drop(name, "queue full")
		return false
	}
}

// Stop stops accepting tasks, cancels running ones and waits for the workers to exit.
// Tasks still queued are abandoned.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)
		d.cancel()
		d.wg.Wait()

		abandoned := len(d.queue)
		if abandoned > 0 {
			d.logger.Warn("Abandoned queued tasks on shutdown", zap.Int("count", abandoned))
		}
		d.logger.Info("Task dispatcher stopped")
	})
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for {
		select {
		case <-d.stopCh:
			return
		case t := <-d.queue:
			metrics.TaskQueueDepth.Dec()
			d.run(t)
		}
	}
}

func (d *Dispatcher) run(t task) {
	ctx := d.baseCtx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			metrics.TasksTotal.WithLabelValues(t.name, StatusFailed).Inc()
			d.logger.Error("Task panicked",
				zap.String("task", t.name),
				zap.String("task_id", t.id),
				zap.Any("panic", r),
			)
		}
	}()

	if err := t.fn(ctx); err != nil {
		metrics.TasksTotal.WithLabelValues(t.name, StatusFailed).Inc()
		d.logger.Warn("Task failed",
			zap.String("task", t.name),
			zap.String("task_id", t.id),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return
	}

	metrics.TasksTotal.WithLabelValues(t.name, StatusSucceeded).Inc()
	d.logger.Debug("Task completed",
		zap.String("task", t.name),
		zap.String("task_id", t.id),
		zap.Duration("duration", time.Since(start)),
	)
}

func (d *Dispatcher) drop(name, reason string) {
	metrics.TasksTotal.WithLabelValues(name, StatusDropped).Inc()
	d.logger.Warn("Task dropped", zap.String("task", name), zap.String("reason", reason))
}
