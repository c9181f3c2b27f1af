package taskqueue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Deferrer schedules a callback to run on a later execution turn.
// *Queue implements it; consumers should accept this interface so tests can
// substitute their own scheduling.
type Deferrer interface {
	// Defer schedules fn to run later without blocking the caller and
	// without re-entering the caller's stack.
	Defer(fn func()) error
}

// Queue is a single-consumer FIFO task executor. All deferred callbacks run
// sequentially on the goroutine that called Start, in the order they were
// deferred.
type Queue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  []func()
	closed bool

	shutdownTimeout time.Duration
	logger          *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	tasksDeferred atomic.Int64
	tasksExecuted atomic.Int64
	tasksPanicked atomic.Int64
}

// QueueStats provides observability metrics for monitoring and debugging.
type QueueStats struct {
	TasksDeferred int64
	TasksExecuted int64
	TasksPanicked int64
	QueueLength   int
	IsRunning     bool
}

// New creates a new task queue with the given options.
//
// Example:
//
//	queue := taskqueue.New(
//	    taskqueue.WithQueueLogger(logger),
//	    taskqueue.WithShutdownTimeout(10*time.Second),
//	)
func New(opts ...Option) *Queue {
	q := &Queue{
		shutdownTimeout: 30 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:            make(chan struct{}),
	}
	q.cond = sync.NewCond(&q.mu)

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Defer schedules fn to run on a later turn of the queue goroutine.
// It never blocks and never invokes fn synchronously, so it is safe to call
// from inside a running task. Tasks deferred before Start accumulate and run
// once the loop starts. Returns ErrQueueClosed after shutdown.
func (q *Queue) Defer(fn func()) error {
	if fn == nil {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}

	q.tasks = append(q.tasks, fn)
	q.tasksDeferred.Add(1)
	q.cond.Signal()
	return nil
}

// Start runs the task loop on the calling goroutine until the context is
// cancelled. This is a blocking operation; use Run() for errgroup pattern or
// call this in a goroutine.
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.cancel != nil {
		q.mu.Unlock()
		return ErrQueueAlreadyStarted
	}
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}

	q.ctx, q.cancel = context.WithCancel(ctx)
	ctx = q.ctx
	q.mu.Unlock()

	q.logger.InfoContext(ctx, "task queue started")

	go func() {
		<-ctx.Done()
		q.close()
	}()

	q.loop()
	close(q.done)

	q.logger.Info("task queue loop exited",
		slog.Int64("tasks_executed", q.tasksExecuted.Load()))
	return ctx.Err()
}

// Stop gracefully shuts down the queue: no new tasks are accepted, tasks
// already deferred keep running until the queue drains or the shutdown
// timeout is exceeded.
func (q *Queue) Stop() error {
	q.mu.Lock()
	if q.cancel == nil {
		q.mu.Unlock()
		return ErrQueueNotStarted
	}

	cancel := q.cancel
	q.cancel = nil
	q.mu.Unlock()

	cancel()

	q.logger.Info("task queue stopping, draining deferred tasks",
		slog.Duration("timeout", q.shutdownTimeout))

	select {
	case <-q.done:
		q.logger.Info("task queue stopped cleanly")
		return nil
	case <-time.After(q.shutdownTimeout):
		q.logger.Warn("task queue shutdown timeout exceeded - remaining tasks may be abandoned",
			slog.Duration("timeout", q.shutdownTimeout))
		return fmt.Errorf("shutdown timeout exceeded after %s", q.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the queue, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (q *Queue) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- q.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			_ = q.Stop() // Ignore stop error in normal shutdown
			<-errCh      // Wait for Start() to exit
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// close marks the queue closed and wakes the loop so it can drain and exit.
func (q *Queue) close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}

func (q *Queue) loop() {
	for {
		q.mu.Lock()
		for len(q.tasks) == 0 && !q.closed {
			q.cond.Wait()
		}
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return
		}

		// Swap out the whole batch; tasks deferred while the batch runs
		// land in the fresh slice and are picked up next iteration, so FIFO
		// order is preserved across batches.
		batch := q.tasks
		q.tasks = nil
		q.mu.Unlock()

		for _, fn := range batch {
			q.execute(fn)
		}
	}
}

func (q *Queue) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.tasksPanicked.Add(1)
			q.logger.Error("deferred task panicked",
				slog.Any("panic", r))
		}
	}()

	fn()
	q.tasksExecuted.Add(1)
}

// Stats returns current queue statistics for observability and monitoring.
func (q *Queue) Stats() QueueStats {
	q.mu.Lock()
	queueLength := len(q.tasks)
	isRunning := q.cancel != nil
	q.mu.Unlock()

	return QueueStats{
		TasksDeferred: q.tasksDeferred.Load(),
		TasksExecuted: q.tasksExecuted.Load(),
		TasksPanicked: q.tasksPanicked.Load(),
		QueueLength:   queueLength,
		IsRunning:     isRunning,
	}
}

// Healthcheck validates that the queue loop is operational.
// Returns nil if healthy, or an error describing the health issue.
func (q *Queue) Healthcheck(ctx context.Context) error {
	stats := q.Stats()

	if !stats.IsRunning {
		return errors.Join(ErrHealthcheckFailed, ErrQueueNotRunning)
	}

	return nil
}
