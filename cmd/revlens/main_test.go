package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/revlens"
	main "github.com/reviewlens/revlens/cmd/revlens"
	"github.com/reviewlens/revlens/mock"
)

// testDeps returns a Dependencies with buffers and a quiet logger wired up.
func testDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}, stdout, stderr
}

func TestCmdList(t *testing.T) {
	t.Parallel()

	t.Run("lists extractions", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionsFn: func(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
				assert.Equal(t, 20, filter.Limit)
				return []*revlens.Extraction{
					{ID: "ex-1", URL: "https://example.com/a", Reviews: []string{"r1", "r2"}},
					{ID: "ex-2", URL: "https://example.com/b"},
				}, nil
			},
		}

		cmd := &main.ListCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "ex-1")
		assert.Contains(t, stdout.String(), "https://example.com/a")
		assert.Contains(t, stdout.String(), "2 reviews")
		assert.Empty(t, stderr.String())
	})

	t.Run("shows message when empty", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionsFn: func(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
				return nil, nil
			},
		}

		cmd := &main.ListCmd{Limit: 20}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No extractions found")
	})

	t.Run("passes url filter", func(t *testing.T) {
		t.Parallel()

		var gotFilter revlens.ExtractionFilter
		deps, _, _ := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionsFn: func(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		cmd := &main.ListCmd{URL: "https://example.com/p", Limit: 5}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, gotFilter.URL)
		assert.Equal(t, "https://example.com/p", *gotFilter.URL)
	})

	t.Run("returns error when find fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionsFn: func(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
				return nil, revlens.Errorf(revlens.EINTERNAL, "database error")
			},
		}

		cmd := &main.ListCmd{}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestCmdShow(t *testing.T) {
	t.Parallel()

	t.Run("shows extraction with summary", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionByIDFn: func(ctx context.Context, id string) (*revlens.Extraction, error) {
				return &revlens.Extraction{
					ID:      id,
					URL:     "https://example.com/p",
					Title:   "Wireless Mouse",
					Reviews: []string{"The scroll wheel is smooth and precise."},
				}, nil
			},
			FindSummaryByExtractionFn: func(ctx context.Context, id string) (*revlens.Summary, error) {
				return &revlens.Summary{
					Pros:             []string{"scroll wheel"},
					OverallSentiment: revlens.SentimentPositive,
					Score:            4.5,
					OneLineSummary:   "Mostly loved.",
					Source:           "openrouter",
				}, nil
			},
		}

		cmd := &main.ShowCmd{ID: "ex-1"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Wireless Mouse")
		assert.Contains(t, stdout.String(), "scroll wheel")
		assert.Contains(t, stdout.String(), "Mostly loved.")
		assert.Contains(t, stdout.String(), "Positive")
	})

	t.Run("works without summary", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionByIDFn: func(ctx context.Context, id string) (*revlens.Extraction, error) {
				return &revlens.Extraction{ID: id, URL: "https://example.com/p"}, nil
			},
			FindSummaryByExtractionFn: func(ctx context.Context, id string) (*revlens.Summary, error) {
				return nil, revlens.Errorf(revlens.ENOTFOUND, "summary not found")
			},
		}

		cmd := &main.ShowCmd{ID: "ex-1"}
		require.NoError(t, cmd.Run(deps))

		assert.NotContains(t, stdout.String(), "Summary")
	})

	t.Run("returns error when not found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Extractions = &mock.ExtractionService{
			FindExtractionByIDFn: func(ctx context.Context, id string) (*revlens.Extraction, error) {
				return nil, revlens.Errorf(revlens.ENOTFOUND, "extraction not found")
			},
		}

		cmd := &main.ShowCmd{ID: "no-such-id"}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "not found")
		assert.Contains(t, stderr.String(), "revlens list")
	})
}

func TestCmdDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes extraction", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		deps, stdout, stderr := testDeps()
		deps.Extractions = &mock.ExtractionService{
			DeleteExtractionFn: func(ctx context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		cmd := &main.DeleteCmd{ID: "ex-1", Force: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "ex-1", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
		assert.Empty(t, stderr.String())
	})

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()

		cmd := &main.DeleteCmd{ID: "ex-1"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, revlens.EINVALID, revlens.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
		assert.Empty(t, stdout.String())
	})

	t.Run("returns error when not found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Extractions = &mock.ExtractionService{
			DeleteExtractionFn: func(ctx context.Context, id string) error {
				return revlens.Errorf(revlens.ENOTFOUND, "extraction not found")
			},
		}

		cmd := &main.DeleteCmd{ID: "no-such-id", Force: true}
		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestCmdExtract(t *testing.T) {
	t.Parallel()

	pageDoc := func(reviews ...string) *mock.Document {
		return &mock.Document{
			SelectAllFn: func(selector string) ([]string, error) {
				if selector == ".review-text" {
					return reviews, nil
				}
				return nil, nil
			},
			SelectFirstFn: func(selector string) (string, error) {
				if selector == "#productTitle" {
					return "Wireless Mouse", nil
				}
				return "", nil
			},
			LocationFn: func() string { return "https://example.com/p" },
		}
	}

	selectors := &revlens.SelectorConfig{
		ReviewSelectors: []string{".review-text"},
		TitleSelectors:  []string{"#productTitle"},
	}

	t.Run("extracts and prints reviews", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Selectors = selectors
		deps.Accessor = &mock.DocumentAccessor{
			AcquireFn: func(ctx context.Context, url string) (revlens.Document, error) {
				return pageDoc("The scroll wheel is smooth and precise in daily use."), nil
			},
		}

		cmd := &main.ExtractCmd{
			URLs:        []string{"https://example.com/p"},
			Concurrency: 1,
			RPS:         100,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Wireless Mouse")
		assert.Contains(t, stdout.String(), "scroll wheel")
		assert.Contains(t, stdout.String(), "Extracted 1 of 1 pages")
		assert.Empty(t, stderr.String())
	})

	t.Run("saves with --save", func(t *testing.T) {
		t.Parallel()

		var saved *revlens.Extraction
		deps, _, _ := testDeps()
		deps.Selectors = selectors
		deps.Accessor = &mock.DocumentAccessor{
			AcquireFn: func(ctx context.Context, url string) (revlens.Document, error) {
				return pageDoc("The scroll wheel is smooth and precise in daily use."), nil
			},
		}
		deps.Extractions = &mock.ExtractionService{
			CreateExtractionFn: func(ctx context.Context, e *revlens.Extraction) error {
				saved = e
				return nil
			},
		}

		cmd := &main.ExtractCmd{
			URLs:        []string{"https://example.com/p"},
			Save:        true,
			Concurrency: 1,
			RPS:         100,
		}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/p", saved.URL)
	})

	t.Run("reports failed URLs and continues", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Selectors = selectors
		deps.Accessor = &mock.DocumentAccessor{
			AcquireFn: func(ctx context.Context, url string) (revlens.Document, error) {
				if url == "https://example.com/down" {
					return nil, revlens.Errorf(revlens.EUNAVAILABLE, "document scrape failed: timeout")
				}
				return pageDoc("The scroll wheel is smooth and precise in daily use."), nil
			},
		}

		cmd := &main.ExtractCmd{
			URLs:        []string{"https://example.com/down", "https://example.com/p"},
			Concurrency: 1,
			RPS:         100,
		}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stderr.String(), "https://example.com/down")
		assert.Contains(t, stdout.String(), "Extracted 1 of 2 pages")
	})
}

func TestCmdAnalyze(t *testing.T) {
	t.Parallel()

	selectors := &revlens.SelectorConfig{
		ReviewSelectors: []string{".review-text"},
		TitleSelectors:  []string{"h1"},
	}

	accessorWith := func(reviews ...string) *mock.DocumentAccessor {
		return &mock.DocumentAccessor{
			AcquireFn: func(ctx context.Context, url string) (revlens.Document, error) {
				return &mock.Document{
					SelectAllFn: func(string) ([]string, error) {
						return reviews, nil
					},
					SelectFirstFn: func(string) (string, error) {
						return "Wireless Mouse", nil
					},
					LocationFn: func() string { return url },
				}, nil
			},
		}
	}

	t.Run("prints summary JSON", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := testDeps()
		deps.Selectors = selectors
		deps.Accessor = accessorWith("The scroll wheel is smooth and precise in daily use.")
		deps.Summarizer = &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, e *revlens.Extraction) (*revlens.Summary, error) {
				return &revlens.Summary{
					OverallSentiment: revlens.SentimentPositive,
					OneLineSummary:   "Mostly loved.",
					Source:           "openrouter",
				}, nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/p"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), `"overall_sentiment": "Positive"`)
		assert.Contains(t, stdout.String(), "Mostly loved.")
		assert.Empty(t, stderr.String())
	})

	t.Run("errors when no reviews found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps()
		deps.Selectors = selectors
		deps.Accessor = accessorWith()

		cmd := &main.AnalyzeCmd{URL: "https://example.com/p"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, revlens.ENOTFOUND, revlens.ErrorCode(err))
		assert.Contains(t, stderr.String(), "No reviews found")
	})

	t.Run("saves extraction and summary with --save", func(t *testing.T) {
		t.Parallel()

		var attachedID string
		deps, _, _ := testDeps()
		deps.Selectors = selectors
		deps.Accessor = accessorWith("The scroll wheel is smooth and precise in daily use.")
		deps.Summarizer = &mock.Summarizer{
			SummarizeFn: func(ctx context.Context, e *revlens.Extraction) (*revlens.Summary, error) {
				return &revlens.Summary{OverallSentiment: revlens.SentimentPositive}, nil
			},
		}
		deps.Extractions = &mock.ExtractionService{
			CreateExtractionFn: func(ctx context.Context, e *revlens.Extraction) error {
				e.ID = "ex-1"
				return nil
			},
			AttachSummaryFn: func(ctx context.Context, id string, s *revlens.Summary) error {
				attachedID = id
				return nil
			},
		}

		cmd := &main.AnalyzeCmd{URL: "https://example.com/p", Save: true}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "ex-1", attachedID)
	})
}

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "test.db")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(context.Background(), tt.args, stdout, stderr)

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "Usage: revlens")
			assert.Contains(t, stdout.String(), "Commands:")
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: revlens")
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")

	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Usage: revlens")
	assert.Empty(t, stderr.String())

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}

func TestRun_ListWithRealDB(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"list"}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No extractions found")
}
