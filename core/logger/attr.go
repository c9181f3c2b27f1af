package logger

import (
	"log/slog"

	"github.com/google/uuid"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Error("msg", logger.Error(err)) without explicit nil checks,
// following the principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic creates an attribute for a recovered panic value.
// Returns empty Attr for nil values.
func Panic(r any) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", r)
}

// ObserverID creates an attribute for an observer's identity.
// Returns empty Attr for the zero uuid.
func ObserverID(id uuid.UUID) slog.Attr {
	if id == uuid.Nil {
		return slog.Attr{}
	}
	return slog.String("observer_id", id.String())
}

// BatchSize creates an attribute for the number of records in a batch.
func BatchSize(n int) slog.Attr {
	return slog.Int("batch_size", n)
}

// PendingObservers creates an attribute for the pending set length.
func PendingObservers(n int) slog.Attr {
	return slog.Int("pending_observers", n)
}
