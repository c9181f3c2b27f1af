package notify

import "sync"

// RecordQueue is an ordered queue of pending records with a
// consecutive-duplicate collapse policy: appending a record equal to the
// queue's current last entry is suppressed. Non-consecutive duplicates are
// kept. RecordQueue is safe for concurrent use.
//
// The zero value is ready to use.
type RecordQueue[R comparable] struct {
	mu      sync.Mutex
	records []R
}

// Append adds rec to the end of the queue unless it equals the queue's
// current last entry. Reports whether the record was actually appended.
func (q *RecordQueue[R]) Append(rec R) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if n := len(q.records); n > 0 && q.records[n-1] == rec {
		return false
	}

	q.records = append(q.records, rec)
	return true
}

// Take atomically returns the current queue contents and empties the queue.
// Returns nil when the queue is empty.
func (q *RecordQueue[R]) Take() []R {
	q.mu.Lock()
	defer q.mu.Unlock()

	records := q.records
	q.records = nil
	return records
}

// Len returns the number of records currently queued.
func (q *RecordQueue[R]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.records)
}
