package revlens

import (
	"context"
	"time"
)

// MaxReviews is the upper bound on reviews carried through the pipeline.
// Extractions are truncated to this many entries and the analyze API caps
// incoming payloads at the same size.
const MaxReviews = 30

// Extraction represents the result of one extraction pass over a product
// page. It is produced whole; there is no partial or streaming form.
type Extraction struct {
	ID          string    `json:"id,omitempty"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Reviews     []string  `json:"reviews"`
	ContentHash string    `json:"contentHash,omitempty"`
	ExtractedAt time.Time `json:"extractedAt,omitempty"`
}

// Validate returns an error if the extraction contains invalid fields.
// An empty review list is valid; an empty review string is not.
func (e *Extraction) Validate() error {
	if e.URL == "" {
		return Errorf(EINVALID, "extraction URL required")
	}
	for _, r := range e.Reviews {
		if r == "" {
			return Errorf(EINVALID, "extraction contains an empty review")
		}
	}
	return nil
}

// ExtractionService represents a service for managing stored extractions
// and their attached summaries.
type ExtractionService interface {
	// CreateExtraction persists a new extraction.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter, most
	// recent first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction and its summary.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error

	// AttachSummary stores the summary produced for an extraction,
	// replacing any previous one.
	// Returns ENOTFOUND if the extraction does not exist.
	AttachSummary(ctx context.Context, extractionID string, summary *Summary) error

	// FindSummaryByExtraction retrieves the summary attached to an
	// extraction. Returns ENOTFOUND if no summary is attached.
	FindSummaryByExtraction(ctx context.Context, extractionID string) (*Summary, error)
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID  *string `json:"id"`
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
