// Package gemini provides a revlens.Summarizer using Google Gemini.
package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/reviewlens/revlens"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

const systemPrompt = "You are a review summarization expert. " +
	"Respond with a single JSON object with these exact keys: 'pros' (list of strings), " +
	"'cons' (list of strings), 'overall_sentiment' (string: 'Positive', 'Negative', or 'Mixed'), " +
	"'score' (number 0-5), and 'one_line_summary' (concise string)."

// Ensure Summarizer implements revlens.Summarizer at compile time.
var _ revlens.Summarizer = (*Summarizer)(nil)

// Summarizer analyzes reviews through the Gemini API.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize sends the extraction's reviews to Gemini and parses the
// structured summary from its output.
func (s *Summarizer) Summarize(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error) {
	if extraction == nil || len(extraction.Reviews) == 0 {
		return nil, revlens.Errorf(revlens.EINVALID, "no reviews provided")
	}
	reviews := extraction.Reviews
	if len(reviews) > revlens.MaxReviews {
		reviews = reviews[:revlens.MaxReviews]
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(reviews)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, revlens.Errorf(revlens.EINTERNAL, "gemini returned nil result")
	}

	summary, err := revlens.ParseSummaryJSON(result.Text())
	if err != nil {
		return nil, err
	}
	summary.Source = "gemini"
	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The JSON response MIME type keeps the model from wrapping output in
// markdown fences.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the reviews to analyze.
func BuildUserPrompt(reviews []string) string {
	return "Here are the reviews to analyze:\n" + revlens.FormatReviews(reviews)
}
