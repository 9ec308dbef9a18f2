package revlens

import "context"

// Ensure FallbackSummarizer implements Summarizer at compile time.
var _ Summarizer = (*FallbackSummarizer)(nil)

// FallbackSummarizer tries a primary Summarizer and, when it fails for any
// reason, runs a fallback instead. The analyze service uses it to degrade
// from a model backend to the deterministic sentiment analyzer.
type FallbackSummarizer struct {
	Primary  Summarizer
	Fallback Summarizer

	// OnFallback, if set, is called with the primary error before the
	// fallback runs.
	OnFallback func(err error)
}

// Summarize runs the primary summarizer, falling back on error.
func (s *FallbackSummarizer) Summarize(ctx context.Context, extraction *Extraction) (*Summary, error) {
	summary, err := s.Primary.Summarize(ctx, extraction)
	if err == nil {
		return summary, nil
	}
	if s.OnFallback != nil {
		s.OnFallback(err)
	}
	return s.Fallback.Summarize(ctx, extraction)
}
