package extract

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/reviewlens/revlens"
)

// Collector applies an ordered selector list against a document and
// accumulates cleaned, deduplicated review candidates.
type Collector struct {
	cleaner *Cleaner
	cfg     Config
	logger  *slog.Logger
}

// NewCollector creates a Collector. A nil logger discards log output.
func NewCollector(cfg Config, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Collector{
		cleaner: NewCleaner(cfg),
		cfg:     cfg,
		logger:  logger,
	}
}

// Collect evaluates each selector in order and returns the cleaned text of
// every accepted candidate, capped at MaxReviews. A selector that fails to
// query is skipped; a malformed or site-specific selector never aborts the
// whole collection. Candidates are accepted when their cleaned length
// exceeds MinReviewLen and they have not been seen before (exact match),
// which filters noise-only residue and collapses overlapping selectors
// matching the same logical review. Discovery order is selector-list order,
// then document order within a selector; it determines which reviews
// survive truncation.
func (c *Collector) Collect(doc revlens.Document, selectors []string) []string {
	seen := make(map[string]struct{})
	reviews := make([]string, 0, c.cfg.MaxReviews)

	for _, sel := range selectors {
		texts, err := doc.SelectAll(sel)
		if err != nil {
			c.logger.Debug("selector skipped",
				"selector", sel,
				"code", revlens.ErrorCode(err),
				"error", err,
			)
			continue
		}

		for _, raw := range texts {
			cleaned := c.cleaner.Clean(raw)
			if utf8.RuneCountInString(cleaned) <= c.cfg.MinReviewLen {
				continue
			}
			if _, ok := seen[cleaned]; ok {
				continue
			}
			seen[cleaned] = struct{}{}
			reviews = append(reviews, cleaned)
		}
	}

	if len(reviews) > c.cfg.MaxReviews {
		reviews = reviews[:c.cfg.MaxReviews]
	}
	return reviews
}

// ResolveTitle iterates title selectors in order and returns the trimmed
// text of the first selector whose match yields non-empty text. Query
// failures are skipped. Returns an empty string when nothing matches;
// absence of a title is a valid state, not an error.
func ResolveTitle(doc revlens.Document, selectors []string) string {
	for _, sel := range selectors {
		text, err := doc.SelectFirst(sel)
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
