package extract

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/reviewlens/revlens"
)

// Extractor orchestrates one extraction pass: collect reviews, resolve the
// title, and read the document's source location. It performs no network
// I/O beyond what the accessor does and is safely re-invocable; each pass
// is independent and shares no mutable state with other passes.
type Extractor struct {
	accessor  revlens.DocumentAccessor
	selectors *revlens.SelectorConfig
	collector *Collector
}

// Option configures an Extractor.
type Option func(*options)

type options struct {
	cfg    Config
	logger *slog.Logger
}

// WithConfig overrides the default pipeline configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithLogger sets the logger used for per-selector diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates an Extractor that reads documents through the accessor and
// queries them with the given selector lists.
func New(accessor revlens.DocumentAccessor, selectors *revlens.SelectorConfig, opts ...Option) (*Extractor, error) {
	if err := selectors.Validate(); err != nil {
		return nil, err
	}

	o := &options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}

	return &Extractor{
		accessor:  accessor,
		selectors: selectors,
		collector: NewCollector(o.cfg, o.logger),
	}, nil
}

// Extract runs one extraction pass for the given URL. Zero collected
// reviews is a valid result, not an error; only failure to obtain a
// document at all fails the pass, surfaced as EUNAVAILABLE.
func (e *Extractor) Extract(ctx context.Context, url string) (*revlens.Extraction, error) {
	doc, err := e.accessor.Acquire(ctx, url)
	if err != nil {
		return nil, revlens.Errorf(revlens.EUNAVAILABLE, "document scrape failed: %v", err)
	}
	defer doc.Close()

	reviews := e.collector.Collect(doc, e.selectors.ReviewSelectors)
	title := ResolveTitle(doc, e.selectors.TitleSelectors)

	return &revlens.Extraction{
		URL:         doc.Location(),
		Title:       title,
		Reviews:     reviews,
		ContentHash: hashReviews(reviews),
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// hashReviews computes an xxHash fingerprint of the collected reviews,
// used by the history store to spot unchanged pages.
func hashReviews(reviews []string) string {
	if len(reviews) == 0 {
		return ""
	}
	sum := xxhash.Sum64String(strings.Join(reviews, "\n"))
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, sum)
	return hex.EncodeToString(b)
}
