package mock

import (
	"context"

	"github.com/reviewlens/revlens"
)

var _ revlens.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of revlens.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn        func(ctx context.Context, extraction *revlens.Extraction) error
	FindExtractionByIDFn      func(ctx context.Context, id string) (*revlens.Extraction, error)
	FindExtractionsFn         func(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error)
	DeleteExtractionFn        func(ctx context.Context, id string) error
	AttachSummaryFn           func(ctx context.Context, extractionID string, summary *revlens.Summary) error
	FindSummaryByExtractionFn func(ctx context.Context, extractionID string) (*revlens.Summary, error)
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *revlens.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*revlens.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}

func (s *ExtractionService) AttachSummary(ctx context.Context, extractionID string, summary *revlens.Summary) error {
	return s.AttachSummaryFn(ctx, extractionID, summary)
}

func (s *ExtractionService) FindSummaryByExtraction(ctx context.Context, extractionID string) (*revlens.Summary, error) {
	return s.FindSummaryByExtractionFn(ctx, extractionID)
}
