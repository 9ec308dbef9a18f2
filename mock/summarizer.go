package mock

import (
	"context"

	"github.com/reviewlens/revlens"
)

var _ revlens.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of revlens.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error) {
	return s.SummarizeFn(ctx, extraction)
}
