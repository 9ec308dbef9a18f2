// Package sentiment provides a revlens.Summarizer that works without any
// external service. It scores reviews against a small polarity lexicon and
// surfaces the most frequent keywords from positive and negative reviews.
// It is meant as the fallback behind an LLM-backed summarizer.
package sentiment

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/reviewlens/revlens"
)

// Thresholds separating positive, neutral and negative outcomes.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
	keywordThreshold  = 0.1
	maxKeywords       = 6
)

var wordRE = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "is": {}, "in": {}, "it": {}, "of": {}, "to": {},
	"this": {}, "that": {}, "with": {}, "for": {}, "on": {}, "was": {},
	"my": {}, "i": {}, "its": {}, "but": {}, "are": {}, "very": {},
	"not": {}, "be": {}, "have": {}, "has": {},
}

// lexicon maps sentiment-bearing words to a polarity in [-1, 1].
var lexicon = map[string]float64{
	"amazing": 0.9, "awesome": 0.9, "excellent": 0.9, "fantastic": 0.9,
	"perfect": 0.9, "love": 0.8, "loved": 0.8, "wonderful": 0.8,
	"great": 0.7, "best": 0.7, "impressive": 0.7, "happy": 0.6,
	"good": 0.5, "nice": 0.5, "solid": 0.5, "comfortable": 0.5,
	"recommend": 0.5, "recommended": 0.5, "fast": 0.4, "easy": 0.4,
	"works": 0.3, "fine": 0.3, "decent": 0.2, "okay": 0.1, "ok": 0.1,

	"average": -0.1, "mediocre": -0.3, "slow": -0.3, "expensive": -0.3,
	"disappointing": -0.6, "disappointed": -0.6, "poor": -0.6,
	"bad": -0.6, "cheap": -0.4, "flimsy": -0.5, "uncomfortable": -0.5,
	"waste": -0.7, "broken": -0.7, "broke": -0.7, "defective": -0.8,
	"useless": -0.8, "terrible": -0.9, "horrible": -0.9, "awful": -0.9,
	"worst": -0.9, "hate": -0.8, "hated": -0.8, "refund": -0.5,
	"return": -0.4, "returned": -0.4, "stopped": -0.4, "failed": -0.6,
}

// negations flip the polarity of the word that follows them.
var negations = map[string]struct{}{
	"not": {}, "never": {}, "no": {}, "hardly": {}, "barely": {},
}

// Ensure Summarizer implements revlens.Summarizer at compile time.
var _ revlens.Summarizer = (*Summarizer)(nil)

// Summarizer produces lexicon-based summaries locally.
type Summarizer struct{}

// NewSummarizer creates a Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize scores each review's polarity, classifies the overall sentiment
// and extracts the most common keywords from the clearly positive and
// clearly negative reviews.
func (s *Summarizer) Summarize(ctx context.Context, extraction *revlens.Extraction) (*revlens.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if extraction == nil || len(extraction.Reviews) == 0 {
		return nil, revlens.Errorf(revlens.EINVALID, "no reviews provided")
	}

	reviews := extraction.Reviews
	polarities := make([]float64, len(reviews))
	var sum float64
	for i, r := range reviews {
		polarities[i] = Polarity(r)
		sum += polarities[i]
	}
	avg := sum / float64(len(reviews))

	overall := revlens.SentimentNeutral
	switch {
	case avg > positiveThreshold:
		overall = revlens.SentimentPositive
	case avg < negativeThreshold:
		overall = revlens.SentimentNegative
	}

	return &revlens.Summary{
		Pros:             topWords(reviews, polarities, func(p float64) bool { return p > keywordThreshold }),
		Cons:             topWords(reviews, polarities, func(p float64) bool { return p < -keywordThreshold }),
		OverallSentiment: overall,
		Score:            avg,
		OneLineSummary:   fmt.Sprintf("Overall %s (score=%.2f).", overall, avg),
		Source:           "fallback",
	}, nil
}

// Polarity scores a single text in [-1, 1] by averaging the polarities of
// its recognized sentiment words. Unrecognized text scores 0.
func Polarity(text string) float64 {
	tokens := wordRE.FindAllString(strings.ToLower(text), -1)
	var sum float64
	var n int
	negated := false
	for _, tok := range tokens {
		if _, ok := negations[tok]; ok {
			negated = true
			continue
		}
		if p, ok := lexicon[tok]; ok {
			if negated {
				p = -p
			}
			sum += p
			n++
		}
		negated = false
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// topWords returns the most frequent stopword-filtered words drawn from
// reviews whose polarity passes the filter, most common first.
func topWords(reviews []string, polarities []float64, pass func(float64) bool) []string {
	counts := make(map[string]int)
	order := make(map[string]int)
	next := 0
	for i, r := range reviews {
		if !pass(polarities[i]) {
			continue
		}
		for _, tok := range wordRE.FindAllString(strings.ToLower(r), -1) {
			if _, ok := stopwords[tok]; ok {
				continue
			}
			if _, seen := counts[tok]; !seen {
				order[tok] = next
				next++
			}
			counts[tok]++
		}
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	// Frequency descending, first occurrence breaking ties for stable output.
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return order[words[i]] < order[words[j]]
	})
	if len(words) > maxKeywords {
		words = words[:maxKeywords]
	}
	return words
}
