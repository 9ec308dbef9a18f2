// Package openai provides a revlens.Summarizer backed by OpenRouter's
// OpenAI-compatible chat completion API.
package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/reviewlens/revlens"
)

// DefaultBaseURL is OpenRouter's OpenAI-compatible endpoint.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// DefaultModel is the model used when none is configured.
const DefaultModel = "google/gemini-2.0-flash-001"

// SystemPrompt instructs the model to emit a single clean JSON object with
// the summary wire contract's exact keys.
const SystemPrompt = "You are a review summarization expert. " +
	"Your response MUST be a single, clean JSON object and nothing else. " +
	"Do not wrap it in markdown blocks (like ```json). " +
	"The JSON object must have these exact keys: 'pros' (list of strings), 'cons' (list of strings), " +
	"'overall_sentiment' (string: 'Positive', 'Negative', or 'Mixed'), 'score' (number 0-5), " +
	"and 'one_line_summary' (concise string)."

// Client is the minimal chat-completion surface the summarizer needs.
// Any OpenAI-compatible backend can satisfy it.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient creates a go-openai client configured for OpenRouter.
func NewClient(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = DefaultBaseURL
	return openai.NewClientWithConfig(cfg)
}

// Ensure Summarizer implements revlens.Summarizer at compile time.
var _ revlens.Summarizer = (*Summarizer)(nil)

// Summarizer analyzes reviews through an OpenAI-compatible chat model.
type Summarizer struct {
	client Client
	model  string
}

// NewSummarizer creates a Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize sends the extraction's reviews to the model and parses the
// structured summary from its output.
func (s *Summarizer) Summarize(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error) {
	reviews, err := boundedReviews(extraction)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildUserPrompt(reviews)},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, revlens.Errorf(revlens.EINTERNAL, "model returned no choices")
	}

	summary, err := revlens.ParseSummaryJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	summary.Source = "openrouter"
	return summary, nil
}

// BuildUserPrompt builds the user prompt containing the reviews to analyze.
func BuildUserPrompt(reviews []string) string {
	return "Here are the reviews to analyze:\n" + revlens.FormatReviews(reviews)
}

// boundedReviews validates the extraction and caps its reviews at the
// pipeline maximum.
func boundedReviews(extraction *revlens.Extraction) ([]string, error) {
	if extraction == nil || len(extraction.Reviews) == 0 {
		return nil, revlens.Errorf(revlens.EINVALID, "no reviews provided")
	}
	reviews := extraction.Reviews
	if len(reviews) > revlens.MaxReviews {
		reviews = reviews[:revlens.MaxReviews]
	}
	return reviews, nil
}
