package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	// cache holds one parsed value per configuration type.
	cache sync.Map // reflect.Type -> parsed config value
)

// Load parses environment variables into cfg based on its `env` struct tags.
// The first call for a given type parses the environment; subsequent calls
// for the same type return the cached value. A .env file in the working
// directory, if present, is loaded into the environment once per process
// before the first parse.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env files are expected outside local development.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParseFailed, err)
	}

	// LoadOrStore keeps concurrent first loads of the same type consistent:
	// every caller ends up with the value that won the store.
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a missing required variable should abort the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
