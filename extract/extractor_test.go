package extract_test

import (
	"context"
	"testing"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/extract"
	"github.com/reviewlens/revlens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidSelectorConfig(t *testing.T) {
	t.Parallel()

	_, err := extract.New(&mock.DocumentAccessor{}, &revlens.SelectorConfig{})

	require.Error(t, err)
	assert.Equal(t, revlens.EINVALID, revlens.ErrorCode(err))
}

func TestExtractor_Extract_AssemblesResult(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		SelectAllFn: func(selector string) ([]string, error) {
			if selector == ".review-text" {
				return []string{
					"4.0 out of 5 stars\nThe blender crushes ice without straining and cleans easily.",
				}, nil
			}
			return nil, nil
		},
		SelectFirstFn: func(selector string) (string, error) {
			if selector == "#productTitle" {
				return " Kitchen Blender Pro ", nil
			}
			return "", nil
		},
		LocationFn: func() string { return "https://example.com/blender" },
	}
	accessor := &mock.DocumentAccessor{
		AcquireFn: func(_ context.Context, url string) (revlens.Document, error) {
			return doc, nil
		},
	}

	e, err := extract.New(accessor, &revlens.SelectorConfig{
		ReviewSelectors: []string{".review-text"},
		TitleSelectors:  []string{"#productTitle", "h1"},
	})
	require.NoError(t, err)

	extraction, err := e.Extract(context.Background(), "https://example.com/blender")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/blender", extraction.URL)
	assert.Equal(t, "Kitchen Blender Pro", extraction.Title)
	assert.Equal(t, []string{"The blender crushes ice without straining and cleans easily."}, extraction.Reviews)
	assert.NotEmpty(t, extraction.ContentHash)
	assert.False(t, extraction.ExtractedAt.IsZero())
}

func TestExtractor_Extract_ZeroMatchesIsNotAnError(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{
		SelectAllFn:   func(string) ([]string, error) { return nil, nil },
		SelectFirstFn: func(string) (string, error) { return "Wireless Mouse", nil },
		LocationFn:    func() string { return "https://example.com/mouse" },
	}
	accessor := &mock.DocumentAccessor{
		AcquireFn: func(context.Context, string) (revlens.Document, error) {
			return doc, nil
		},
	}

	e, err := extract.New(accessor, revlens.DefaultSelectorConfig())
	require.NoError(t, err)

	extraction, err := e.Extract(context.Background(), "https://example.com/mouse")

	require.NoError(t, err)
	assert.Empty(t, extraction.Reviews)
	assert.NotNil(t, extraction.Reviews)
	assert.Equal(t, "Wireless Mouse", extraction.Title)
	assert.Equal(t, "https://example.com/mouse", extraction.URL)
	assert.Empty(t, extraction.ContentHash)
}

func TestExtractor_Extract_AccessorFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	accessor := &mock.DocumentAccessor{
		AcquireFn: func(context.Context, string) (revlens.Document, error) {
			return nil, assert.AnError
		},
	}

	e, err := extract.New(accessor, revlens.DefaultSelectorConfig())
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), "https://example.com/mouse")

	require.Error(t, err)
	assert.Equal(t, revlens.EUNAVAILABLE, revlens.ErrorCode(err))
	assert.Contains(t, revlens.ErrorMessage(err), "document scrape failed")
}

func TestExtractor_Extract_ClosesDocument(t *testing.T) {
	t.Parallel()

	closed := false
	doc := &mock.Document{
		SelectAllFn:   func(string) ([]string, error) { return nil, nil },
		SelectFirstFn: func(string) (string, error) { return "", nil },
		LocationFn:    func() string { return "https://example.com/p" },
		CloseFn:       func() error { closed = true; return nil },
	}
	accessor := &mock.DocumentAccessor{
		AcquireFn: func(context.Context, string) (revlens.Document, error) {
			return doc, nil
		},
	}

	e, err := extract.New(accessor, revlens.DefaultSelectorConfig())
	require.NoError(t, err)

	_, err = e.Extract(context.Background(), "https://example.com/p")

	require.NoError(t, err)
	assert.True(t, closed)
}
