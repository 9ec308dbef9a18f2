package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/reviewlens/revlens"
)

// Compile-time interface verification.
var _ revlens.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements revlens.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// CreateExtraction persists an extraction, assigning it an ID if needed.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *revlens.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	if extraction.ID == "" {
		extraction.ID = uuid.New().String()
	}
	if extraction.ExtractedAt.IsZero() {
		extraction.ExtractedAt = time.Now().UTC()
	}

	reviews, err := marshalStrings(extraction.Reviews)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, url, title, reviews, content_hash, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.URL, extraction.Title, reviews, extraction.ContentHash,
		extraction.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindExtractionByID retrieves an extraction by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*revlens.Extraction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, reviews, content_hash, extracted_at
		FROM extractions
		WHERE id = ?
	`, id)

	extraction, err := scanExtraction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, revlens.Errorf(revlens.ENOTFOUND, "extraction not found")
	}
	return extraction, err
}

// FindExtractions retrieves extractions matching the filter, most recent first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter revlens.ExtractionFilter) ([]*revlens.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, reviews, content_hash, extracted_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY extracted_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*revlens.Extraction
	for rows.Next() {
		extraction, err := scanExtraction(rows.Scan)
		if err != nil {
			return nil, err
		}
		extractions = append(extractions, extraction)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction and its summary.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return revlens.Errorf(revlens.ENOTFOUND, "extraction not found")
	}

	return nil
}

// AttachSummary stores a summary for an extraction, replacing any existing one.
func (s *ExtractionService) AttachSummary(ctx context.Context, extractionID string, summary *revlens.Summary) error {
	// Verify the extraction exists so the FK violation doesn't surface
	// as an opaque driver error.
	if _, err := s.FindExtractionByID(ctx, extractionID); err != nil {
		return err
	}

	pros, err := marshalStrings(summary.Pros)
	if err != nil {
		return err
	}
	cons, err := marshalStrings(summary.Cons)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO summaries (extraction_id, pros, cons, overall_sentiment, score, one_line_summary, source)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (extraction_id) DO UPDATE SET
			pros = excluded.pros,
			cons = excluded.cons,
			overall_sentiment = excluded.overall_sentiment,
			score = excluded.score,
			one_line_summary = excluded.one_line_summary,
			source = excluded.source
	`, extractionID, pros, cons, summary.OverallSentiment, summary.Score,
		summary.OneLineSummary, summary.Source)

	return err
}

// FindSummaryByExtraction retrieves the summary attached to an extraction.
func (s *ExtractionService) FindSummaryByExtraction(ctx context.Context, extractionID string) (*revlens.Summary, error) {
	var summary revlens.Summary
	var pros, cons string

	err := s.db.QueryRowContext(ctx, `
		SELECT pros, cons, overall_sentiment, score, one_line_summary, source
		FROM summaries
		WHERE extraction_id = ?
	`, extractionID).Scan(&pros, &cons, &summary.OverallSentiment, &summary.Score,
		&summary.OneLineSummary, &summary.Source)

	if err == sql.ErrNoRows {
		return nil, revlens.Errorf(revlens.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}

	if summary.Pros, err = unmarshalStrings(pros); err != nil {
		return nil, err
	}
	if summary.Cons, err = unmarshalStrings(cons); err != nil {
		return nil, err
	}

	return &summary, nil
}

// scanExtraction reads an extraction row using the given scan function.
func scanExtraction(scan func(dest ...any) error) (*revlens.Extraction, error) {
	var extraction revlens.Extraction
	var reviews, extractedAt string

	if err := scan(&extraction.ID, &extraction.URL, &extraction.Title, &reviews,
		&extraction.ContentHash, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	if extraction.Reviews, err = unmarshalStrings(reviews); err != nil {
		return nil, err
	}
	if extraction.ExtractedAt, err = time.Parse(time.RFC3339, extractedAt); err != nil {
		return nil, fmt.Errorf("failed to parse extracted_at: %w", err)
	}

	return &extraction, nil
}

// marshalStrings encodes a string slice as a JSON text column value.
// A nil slice encodes as an empty list.
func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalStrings(encoded string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, fmt.Errorf("failed to decode string list: %w", err)
	}
	return values, nil
}
