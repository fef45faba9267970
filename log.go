package htgen

import "log/slog"

// discardLogger is used when no logger is configured.
func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
