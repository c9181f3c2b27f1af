// Package taskqueue provides a single-goroutine cooperative task executor
// with strict FIFO ordering and no synchronous re-entry into the caller.
//
// Deferred callbacks run on a later turn of the queue's own goroutine, never
// on the goroutine that scheduled them. Callbacks scheduled through the same
// queue execute in the order they were deferred. A panicking callback is
// recovered and logged; it never stops the loop or skips later callbacks.
//
// The queue is unbounded: Defer never blocks, which makes it safe to call
// from inside a running callback.
//
// # Usage
//
//	queue := taskqueue.New(
//	    taskqueue.WithQueueLogger(logger),
//	)
//
//	go queue.Start(ctx)
//	defer queue.Stop()
//
//	queue.Defer(func() {
//	    // runs on the queue goroutine, on a later turn
//	})
//
// For coordinated lifecycle management with errgroup:
//
//	g, ctx := errgroup.WithContext(context.Background())
//	g.Go(queue.Run(ctx))
//
// # Observability
//
// Stats() exposes counters for deferred, executed, and panicked tasks along
// with the current queue length. Healthcheck(ctx) reports whether the loop
// is running, suitable for health check endpoints.
package taskqueue
