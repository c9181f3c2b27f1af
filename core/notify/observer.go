package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Observer is an external subscriber with its own record queue and delivery
// callback. Implementations are registered with a NotifyList via Enqueue.
type Observer[R comparable] interface {
	// AppendRecord adds rec to the observer's record queue unless it equals
	// the queue's current last entry (see RecordQueue.Append). Reports
	// whether the record was actually appended.
	AppendRecord(rec R) bool

	// TakeRecords atomically returns and empties the observer's record queue.
	TakeRecords() []R

	// Deliver invokes the observer's callback with a batch of records.
	// The NotifyList only calls Deliver with a non-empty batch. Errors and
	// panics are isolated per delivery and never affect other observers.
	Deliver(batch []R) error

	// DropTransients removes any ancillary tracking state associated with
	// the observer's currently observed targets. Called immediately before
	// each delivery and also when a snapshotted observer has nothing to
	// deliver. Must be safe to call when there is nothing to remove.
	DropTransients()
}

// Callback processes a batch of records delivered to a BatchObserver.
// The observer itself is passed alongside the batch so a single callback
// function can serve multiple observers.
type Callback[R comparable] func(batch []R, obs *BatchObserver[R]) error

// BatchObserver is a ready-made Observer built around a callback function.
// It owns a RecordQueue and a set of transiently tracked targets, and is
// assigned a uuid identity at construction for logging and correlation.
type BatchObserver[R comparable] struct {
	id       uuid.UUID
	callback Callback[R]
	queue    RecordQueue[R]

	mu         sync.Mutex
	transients map[any]struct{}
}

// NewBatchObserver creates an observer that delivers batches to callback.
func NewBatchObserver[R comparable](callback Callback[R]) (*BatchObserver[R], error) {
	if callback == nil {
		return nil, ErrCallbackNil
	}

	return &BatchObserver[R]{
		id:       uuid.New(),
		callback: callback,
	}, nil
}

// ID returns the observer's unique identifier.
func (o *BatchObserver[R]) ID() uuid.UUID {
	return o.id
}

// AppendRecord implements Observer.
func (o *BatchObserver[R]) AppendRecord(rec R) bool {
	return o.queue.Append(rec)
}

// TakeRecords implements Observer.
func (o *BatchObserver[R]) TakeRecords() []R {
	return o.queue.Take()
}

// PendingRecords returns the number of undelivered records.
func (o *BatchObserver[R]) PendingRecords() int {
	return o.queue.Len()
}

// Deliver implements Observer by invoking the configured callback.
func (o *BatchObserver[R]) Deliver(batch []R) error {
	return o.callback(batch, o)
}

// TrackTransient records ancillary tracking state for an observed target.
// The target must be comparable; it is used as a map key.
func (o *BatchObserver[R]) TrackTransient(target any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.transients == nil {
		o.transients = make(map[any]struct{})
	}
	o.transients[target] = struct{}{}
}

// TrackedTransients returns the number of currently tracked targets.
func (o *BatchObserver[R]) TrackedTransients() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.transients)
}

// DropTransients implements Observer by discarding all tracked targets.
// Safe to call when nothing is tracked.
func (o *BatchObserver[R]) DropTransients() {
	o.mu.Lock()
	defer o.mu.Unlock()

	clear(o.transients)
}
