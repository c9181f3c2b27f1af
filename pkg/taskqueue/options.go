package taskqueue

import (
	"log/slog"
	"time"
)

// Option configures a Queue.
type Option func(*Queue)

// WithQueueLogger configures structured logging for the task queue.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithQueueLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithShutdownTimeout configures how long Stop waits for deferred tasks to
// drain before giving up. Default is 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.shutdownTimeout = d
		}
	}
}
