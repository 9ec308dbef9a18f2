package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/reviewlens/revlens"
)

// Ensure LoggingAccessor implements revlens.DocumentAccessor.
var _ revlens.DocumentAccessor = (*LoggingAccessor)(nil)

// LoggingAccessor wraps a DocumentAccessor with timing and outcome logging.
type LoggingAccessor struct {
	next   revlens.DocumentAccessor
	logger *slog.Logger
}

// NewLoggingAccessor creates a new LoggingAccessor.
func NewLoggingAccessor(next revlens.DocumentAccessor, logger *slog.Logger) *LoggingAccessor {
	return &LoggingAccessor{next: next, logger: logger}
}

// Acquire delegates to the wrapped accessor and logs the result.
func (a *LoggingAccessor) Acquire(ctx context.Context, url string) (revlens.Document, error) {
	begin := time.Now()
	doc, err := a.next.Acquire(ctx, url)
	if err != nil {
		a.logger.Error("document acquire failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	a.logger.Info("document acquired",
		"url", url,
		"duration", time.Since(begin),
	)
	return doc, nil
}

// Close delegates to the wrapped accessor.
func (a *LoggingAccessor) Close() error {
	return a.next.Close()
}
