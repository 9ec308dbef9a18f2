package openai_test

import (
	"context"
	"strings"
	"testing"

	gopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/openai"
)

// chatClient is a function-backed openai.Client for tests.
type chatClient func(ctx context.Context, req gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error)

func (c chatClient) CreateChatCompletion(ctx context.Context, req gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error) {
	return c(ctx, req)
}

func respondWith(content string) chatClient {
	return func(context.Context, gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error) {
		return gopenai.ChatCompletionResponse{
			Choices: []gopenai.ChatCompletionChoice{
				{Message: gopenai.ChatCompletionMessage{Content: content}},
			},
		}, nil
	}
}

func extractionWith(reviews ...string) *revlens.Extraction {
	return &revlens.Extraction{URL: "https://example.com/p", Reviews: reviews}
}

func TestSummarizer_Summarize_ParsesModelOutput(t *testing.T) {
	t.Parallel()

	client := respondWith(`{"pros":["battery"],"cons":["price"],"overall_sentiment":"Positive","score":4.5,"one_line_summary":"Mostly loved."}`)
	s := openai.NewSummarizer(client, "")

	summary, err := s.Summarize(context.Background(), extractionWith("The battery lasts for days of heavy use."))

	require.NoError(t, err)
	assert.Equal(t, []string{"battery"}, summary.Pros)
	assert.Equal(t, revlens.SentimentPositive, summary.OverallSentiment)
	assert.Equal(t, "openrouter", summary.Source)
}

func TestSummarizer_Summarize_RecoversFencedOutput(t *testing.T) {
	t.Parallel()

	client := respondWith("```json\n{\"pros\":[],\"cons\":[],\"overall_sentiment\":\"Mixed\",\"score\":3,\"one_line_summary\":\"Split opinions.\"}\n```")
	s := openai.NewSummarizer(client, "")

	summary, err := s.Summarize(context.Background(), extractionWith("Some reviewers love it, others returned it."))

	require.NoError(t, err)
	assert.Equal(t, revlens.SentimentMixed, summary.OverallSentiment)
}

func TestSummarizer_Summarize_UnparseableOutputIsInternal(t *testing.T) {
	t.Parallel()

	client := respondWith("I could not produce JSON, sorry.")
	s := openai.NewSummarizer(client, "")

	_, err := s.Summarize(context.Background(), extractionWith("A review long enough to be plausible."))

	require.Error(t, err)
	assert.Equal(t, revlens.EINTERNAL, revlens.ErrorCode(err))
}

func TestSummarizer_Summarize_NoReviewsIsInvalid(t *testing.T) {
	t.Parallel()

	s := openai.NewSummarizer(nil, "")

	_, err := s.Summarize(context.Background(), extractionWith())

	require.Error(t, err)
	assert.Equal(t, revlens.EINVALID, revlens.ErrorCode(err))

	_, err = s.Summarize(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, revlens.EINVALID, revlens.ErrorCode(err))
}

func TestSummarizer_Summarize_CapsReviewsAndBuildsPrompt(t *testing.T) {
	t.Parallel()

	var captured gopenai.ChatCompletionRequest
	client := chatClient(func(_ context.Context, req gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error) {
		captured = req
		return respondWith(`{"pros":[],"cons":[],"overall_sentiment":"Neutral","score":2.5,"one_line_summary":"ok"}`)(context.Background(), req)
	})
	s := openai.NewSummarizer(client, "test-model")

	reviews := make([]string, revlens.MaxReviews+10)
	for i := range reviews {
		reviews[i] = "A sufficiently descriptive review body for the test."
	}

	_, err := s.Summarize(context.Background(), extractionWith(reviews...))
	require.NoError(t, err)

	assert.Equal(t, "test-model", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, gopenai.ChatMessageRoleSystem, captured.Messages[0].Role)
	assert.Contains(t, captured.Messages[0].Content, "review summarization expert")

	userPrompt := captured.Messages[1].Content
	assert.Contains(t, userPrompt, "Here are the reviews to analyze:")
	assert.Equal(t, revlens.MaxReviews, strings.Count(userPrompt, "\n- ")+1)
}

func TestSummarizer_Summarize_NoChoicesIsInternal(t *testing.T) {
	t.Parallel()

	client := chatClient(func(context.Context, gopenai.ChatCompletionRequest) (gopenai.ChatCompletionResponse, error) {
		return gopenai.ChatCompletionResponse{}, nil
	})
	s := openai.NewSummarizer(client, "")

	_, err := s.Summarize(context.Background(), extractionWith("A review long enough to be plausible."))

	require.Error(t, err)
	assert.Equal(t, revlens.EINTERNAL, revlens.ErrorCode(err))
}
