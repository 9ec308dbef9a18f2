package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/mock"
	"github.com/reviewlens/revlens/slog"
)

func testLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return stdslog.New(stdslog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingSummarizer_LogsSuccess(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	inner := &mock.Summarizer{
		SummarizeFn: func(context.Context, *revlens.Extraction) (*revlens.Summary, error) {
			return &revlens.Summary{Source: "openrouter", OverallSentiment: revlens.SentimentPositive}, nil
		},
	}
	s := slog.NewLoggingSummarizer(inner, logger)

	summary, err := s.Summarize(context.Background(), &revlens.Extraction{
		URL:     "https://example.com/p",
		Reviews: []string{"A sufficiently descriptive review body."},
	})

	require.NoError(t, err)
	assert.Equal(t, "openrouter", summary.Source)
	assert.Contains(t, buf.String(), "https://example.com/p")
	assert.Contains(t, buf.String(), "openrouter")
}

func TestLoggingSummarizer_LogsFailure(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	inner := &mock.Summarizer{
		SummarizeFn: func(context.Context, *revlens.Extraction) (*revlens.Summary, error) {
			return nil, revlens.Errorf(revlens.EINTERNAL, "model returned no choices")
		},
	}
	s := slog.NewLoggingSummarizer(inner, logger)

	_, err := s.Summarize(context.Background(), &revlens.Extraction{URL: "https://example.com/p"})

	require.Error(t, err)
	assert.Contains(t, buf.String(), "summarize failed")
}

func TestLoggingAccessor_LogsAcquire(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	inner := &mock.DocumentAccessor{
		AcquireFn: func(context.Context, string) (revlens.Document, error) {
			return &mock.Document{}, nil
		},
	}
	a := slog.NewLoggingAccessor(inner, logger)

	doc, err := a.Acquire(context.Background(), "https://example.com/p")

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Contains(t, buf.String(), "document acquired")
}

func TestLoggingAccessor_LogsFailure(t *testing.T) {
	t.Parallel()

	logger, buf := testLogger()
	inner := &mock.DocumentAccessor{
		AcquireFn: func(context.Context, string) (revlens.Document, error) {
			return nil, revlens.Errorf(revlens.EUNAVAILABLE, "document scrape failed: timeout")
		},
		CloseFn: func() error { return nil },
	}
	a := slog.NewLoggingAccessor(inner, logger)

	_, err := a.Acquire(context.Background(), "https://example.com/p")

	require.Error(t, err)
	assert.Contains(t, buf.String(), "document acquire failed")
	assert.NoError(t, a.Close())
}
