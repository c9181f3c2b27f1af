package notify

import "log/slog"

// ListOption configures a NotifyList.
type ListOption[R comparable] func(*NotifyList[R])

// WithListLogger configures structured logging for the notify list.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithListLogger[R comparable](logger *slog.Logger) ListOption[R] {
	return func(l *NotifyList[R]) {
		if logger != nil {
			l.logger = logger
		}
	}
}
