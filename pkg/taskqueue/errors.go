package taskqueue

import "errors"

var (
	// ErrQueueAlreadyStarted is returned when attempting to start a queue that is already running.
	ErrQueueAlreadyStarted = errors.New("task queue already started")

	// ErrQueueNotStarted is returned when attempting to stop a queue that is not running.
	ErrQueueNotStarted = errors.New("task queue not started")

	// ErrQueueClosed is returned by Defer after the queue has been shut down.
	ErrQueueClosed = errors.New("task queue closed")

	// ErrHealthcheckFailed is returned when the queue healthcheck fails.
	ErrHealthcheckFailed = errors.New("task queue healthcheck failed")

	// ErrQueueNotRunning indicates the queue loop is not currently running.
	ErrQueueNotRunning = errors.New("task queue is not running")
)
