package notify

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/devatwork/slimdom/core/logger"
)

// Deferrer schedules a callback to run on a later execution turn, FIFO
// relative to other callbacks deferred through the same mechanism, and never
// synchronously on the caller's stack. *taskqueue.Queue satisfies it.
type Deferrer interface {
	Defer(fn func()) error
}

// NotifyList tracks which observers have pending records and drives their
// deferred, batched delivery.
//
// Enqueue coalesces: any number of records enqueued before the next flush
// turn are delivered in a single flush round, one batch per observer, in the
// order the observers were first enqueued. A flush round that leaves new
// pending work behind (because a callback enqueued more records) re-arms
// itself for a subsequent round.
type NotifyList[R comparable] struct {
	tasks  Deferrer
	logger *slog.Logger

	mu          sync.Mutex
	pending     []Observer[R]
	armed       bool
	outstanding int

	recordsQueued    atomic.Int64
	recordsCollapsed atomic.Int64
	flushRounds      atomic.Int64
	deliveries       atomic.Int64
	deliveryFailures atomic.Int64
}

// ListStats provides observability metrics for monitoring and debugging.
type ListStats struct {
	RecordsQueued         int64 // Records accepted into observer queues
	RecordsCollapsed      int64 // Records suppressed as consecutive duplicates
	FlushRounds           int64 // Flush bodies executed
	Deliveries            int64 // Batches delivered successfully
	DeliveryFailures      int64 // Batches whose callback failed or panicked
	PendingObservers      int   // Current length of the pending set
	OutstandingDeliveries int   // Deliveries armed but not yet finished
	Armed                 bool  // Whether a flush is scheduled but not started
}

// NewList creates a notify list that schedules its flush rounds and
// deliveries on tasks.
//
// Example:
//
//	list, err := notify.NewList[string](queue,
//	    notify.WithListLogger[string](logger),
//	)
func NewList[R comparable](tasks Deferrer, opts ...ListOption[R]) (*NotifyList[R], error) {
	if tasks == nil {
		return nil, ErrDeferrerNil
	}

	l := &NotifyList[R]{
		tasks:  tasks,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Enqueue appends rec to the observer's record queue and schedules a flush.
//
// If rec equals the queue's current last entry the append is suppressed and
// no flush is armed by this call (an earlier arming, if any, stands). The
// observer's callback is never invoked synchronously from Enqueue; delivery
// happens on a later turn of the task queue. Enqueue is safe to call from
// inside a running callback: records enqueued during a flush are delivered
// in a subsequent round.
func (l *NotifyList[R]) Enqueue(obs Observer[R], rec R) {
	if !obs.AppendRecord(rec) {
		l.recordsCollapsed.Add(1)
		return
	}
	l.recordsQueued.Add(1)

	l.mu.Lock()
	l.pending = append(l.pending, obs)
	l.requestFlushLocked()
	l.mu.Unlock()
}

// Clear synchronously discharges all pending records without delivery: every
// pending observer's queue is drained and discarded, no callback or cleanup
// runs, and the pending set is emptied. An already-armed flush still runs but
// finds nothing to deliver.
func (l *NotifyList[R]) Clear() {
	l.mu.Lock()
	pending := l.pending
	l.pending = nil
	l.mu.Unlock()

	for _, obs := range pending {
		obs.TakeRecords()
	}
}

// requestFlushLocked arms a flush round if one is not already armed and
// there is pending work. Idempotent. Caller must hold l.mu.
func (l *NotifyList[R]) requestFlushLocked() {
	if l.armed || len(l.pending) == 0 {
		return
	}

	l.armed = true
	if err := l.tasks.Defer(l.flush); err != nil {
		l.armed = false
		l.logger.Error("failed to defer notification flush",
			logger.PendingObservers(len(l.pending)),
			logger.Error(err))
	}
}

// flush runs once per armed round on the task queue goroutine.
//
// It swaps out the current generation of the pending set, so enqueues made
// while the round is in progress land in a fresh set and arm their own
// round. Each snapshotted observer with a non-empty queue gets one
// independently deferred delivery; observers whose records were already
// taken only receive their cleanup step.
func (l *NotifyList[R]) flush() {
	l.mu.Lock()
	l.armed = false
	snapshot := l.pending
	l.pending = nil
	l.mu.Unlock()

	l.flushRounds.Add(1)

	var armedDeliveries int
	for _, obs := range snapshot {
		batch := obs.TakeRecords()
		if len(batch) == 0 {
			// Nothing to deliver: the records were taken earlier in this
			// round (duplicate pending entry) or discharged via Clear.
			obs.DropTransients()
			continue
		}

		l.mu.Lock()
		l.outstanding++
		l.mu.Unlock()
		armedDeliveries++

		if err := l.tasks.Defer(func() { l.deliver(obs, batch) }); err != nil {
			l.logger.Error("failed to defer batch delivery",
				observerID(obs),
				logger.BatchSize(len(batch)),
				logger.Error(err))
			l.finishDelivery()
		}
	}

	// With no deliveries armed nothing will trigger the completion re-check,
	// so pick up any records enqueued synchronously by cleanup steps here.
	if armedDeliveries == 0 {
		l.mu.Lock()
		l.requestFlushLocked()
		l.mu.Unlock()
	}
}

// deliver runs as an independent deferred task, one per observer per round.
func (l *NotifyList[R]) deliver(obs Observer[R], batch []R) {
	defer l.finishDelivery()
	defer func() {
		if r := recover(); r != nil {
			l.deliveryFailures.Add(1)
			l.logger.Error("observer callback panicked",
				observerID(obs),
				logger.BatchSize(len(batch)),
				logger.Panic(r))
		}
	}()

	obs.DropTransients()

	if err := obs.Deliver(batch); err != nil {
		l.deliveryFailures.Add(1)
		l.logger.Error("observer callback failed",
			observerID(obs),
			logger.BatchSize(len(batch)),
			logger.Error(err))
		return
	}

	l.deliveries.Add(1)
}

// observerID extracts an identity attribute when the observer exposes one.
func observerID[R comparable](obs Observer[R]) slog.Attr {
	if ider, ok := obs.(interface{ ID() uuid.UUID }); ok {
		return logger.ObserverID(ider.ID())
	}
	return slog.Attr{}
}

// finishDelivery decrements the outstanding counter and, when the last
// delivery of a round has finished, arms a new round if deliveries produced
// fresh pending work.
func (l *NotifyList[R]) finishDelivery() {
	l.mu.Lock()
	l.outstanding--
	if l.outstanding == 0 {
		l.requestFlushLocked()
	}
	l.mu.Unlock()
}

// Stats returns current scheduler statistics for observability and monitoring.
func (l *NotifyList[R]) Stats() ListStats {
	l.mu.Lock()
	pending := len(l.pending)
	outstanding := l.outstanding
	armed := l.armed
	l.mu.Unlock()

	return ListStats{
		RecordsQueued:         l.recordsQueued.Load(),
		RecordsCollapsed:      l.recordsCollapsed.Load(),
		FlushRounds:           l.flushRounds.Load(),
		Deliveries:            l.deliveries.Load(),
		DeliveryFailures:      l.deliveryFailures.Load(),
		PendingObservers:      pending,
		OutstandingDeliveries: outstanding,
		Armed:                 armed,
	}
}
