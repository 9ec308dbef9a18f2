package revlens

import (
	"context"
	"encoding/json"
	"strings"
)

// Overall sentiment labels. Model backends are instructed to pick one of
// these; the fallback analyzer never produces SentimentMixed.
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentMixed    = "Mixed"
)

// Summary is the structured analysis of one extraction's reviews. The JSON
// field names are the wire contract shared with the model backends and the
// analyze API.
type Summary struct {
	Pros             []string `json:"pros"`
	Cons             []string `json:"cons"`
	OverallSentiment string   `json:"overall_sentiment"`
	Score            float64  `json:"score"`
	OneLineSummary   string   `json:"one_line_summary"`
	Source           string   `json:"source,omitempty"`
}

// Summarizer produces a structured summary from an extraction's reviews.
type Summarizer interface {
	// Summarize analyzes the extraction's reviews.
	// Returns EINVALID if the extraction carries no reviews.
	Summarize(ctx context.Context, extraction *Extraction) (*Summary, error)
}

// ParseSummaryJSON extracts a Summary from possibly noisy model output.
// Models occasionally wrap the JSON object in markdown fences or prose, so
// the parser slices from the first '{' to the last '}' before decoding.
// Returns EINTERNAL if no parseable object is present.
func ParseSummaryJSON(raw string) (*Summary, error) {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first < 0 || last <= first {
		return nil, Errorf(EINTERNAL, "model output contained no JSON object")
	}

	var s Summary
	if err := json.Unmarshal([]byte(raw[first:last+1]), &s); err != nil {
		return nil, Errorf(EINTERNAL, "model output was not valid JSON: %v", err)
	}
	return &s, nil
}
