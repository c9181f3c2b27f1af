// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/devatwork/slimdom/core/config"
//
//	type SchedulerConfig struct {
//		ShutdownTimeout time.Duration `env:"TASKQUEUE_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//		LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var cfg SchedulerConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SchedulerConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SchedulerConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so each component can declare
// its own config struct and load it on demand.
package config
