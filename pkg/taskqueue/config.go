package taskqueue

import "time"

// Config holds the configuration for the task queue.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	ShutdownTimeout time.Duration `env:"TASKQUEUE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		ShutdownTimeout: 30 * time.Second,
	}
}

// NewFromConfig creates a Queue from configuration.
// Additional options can override config values.
func NewFromConfig(cfg Config, opts ...Option) *Queue {
	allOpts := append([]Option{
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)

	return New(allOpts...)
}
