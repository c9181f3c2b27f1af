package notify

import "errors"

var (
	// ErrDeferrerNil is returned when creating a NotifyList without a task queue.
	ErrDeferrerNil = errors.New("deferrer is nil")

	// ErrCallbackNil is returned when creating a BatchObserver without a callback.
	ErrCallbackNil = errors.New("observer callback is nil")
)
