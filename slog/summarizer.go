// Package slog provides logging decorators for revlens services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/reviewlens/revlens"
)

// Ensure LoggingSummarizer implements revlens.Summarizer.
var _ revlens.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with timing and outcome logging.
type LoggingSummarizer struct {
	next   revlens.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next revlens.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the result.
func (s *LoggingSummarizer) Summarize(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error) {
	begin := time.Now()
	summary, err := s.next.Summarize(ctx, extraction)
	if err != nil {
		s.logger.Error("summarize failed",
			"url", extractionURL(extraction),
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	s.logger.Info("summarize",
		"url", extractionURL(extraction),
		"source", summary.Source,
		"sentiment", summary.OverallSentiment,
		"duration", time.Since(begin),
	)
	return summary, nil
}

func extractionURL(extraction *revlens.Extraction) string {
	if extraction == nil {
		return ""
	}
	return extraction.URL
}
