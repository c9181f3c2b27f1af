// Package notify schedules deferred, batched delivery of accumulated change
// records to a set of independent observers.
//
// Producers call Enqueue as records are generated; delivery never happens
// synchronously inside Enqueue. Instead, a NotifyList accumulates the
// observers that have pending work and arms a single flush on the next
// available turn of a task queue. The flush drains each observer's record
// queue and delivers it as one batch to the observer's callback. Records
// produced while a flush is in progress (including from inside a callback)
// are captured for a subsequent round rather than lost or delivered
// re-entrantly.
//
// # Core Components
//
// Observer is the consumer-side interface: a record queue with a
// consecutive-duplicate collapse policy, a "take records" drain, a batch
// delivery callback, and a transient-state cleanup hook.
//
// RecordQueue implements the shared queue policy: appending a record equal
// to the queue's current last entry is a no-op, so many rapid identical
// changes to the same target collapse into a single entry.
//
// BatchObserver is a ready-made Observer built around a callback function,
// with a uuid identity and transient target tracking.
//
// NotifyList is the scheduler: it tracks which observers have pending work,
// coalesces concurrent flush requests into a single flush pass, delivers
// each observer's batch as an independent deferred task, and re-arms itself
// when deliveries produce new pending work.
//
// # Basic Usage
//
//	import (
//	    "context"
//
//	    "github.com/devatwork/slimdom/core/notify"
//	    "github.com/devatwork/slimdom/pkg/taskqueue"
//	)
//
//	queue := taskqueue.New()
//	go queue.Start(context.Background())
//	defer queue.Stop()
//
//	list, err := notify.NewList[string](queue)
//	if err != nil {
//	    panic(err)
//	}
//
//	observer, err := notify.NewBatchObserver(func(batch []string, obs *notify.BatchObserver[string]) error {
//	    for _, rec := range batch {
//	        process(rec)
//	    }
//	    return nil
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	list.Enqueue(observer, "attribute-changed")
//	list.Enqueue(observer, "attribute-changed") // collapsed into the previous entry
//
// The callback later receives a single batch containing one record.
//
// # Delivery Guarantees
//
// Each observer is delivered to at most once per flush round, and a callback
// failure (error or panic) is isolated to that observer: other observers in
// the round still receive their batches, and the round still completes.
// Delivery order between observers follows the order in which they were
// enqueued.
package notify
