// Package extract implements the review extraction pipeline: noise
// cleaning, selector-based collection, title resolution, and the
// orchestrator that runs one extraction pass against a document.
package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/reviewlens/revlens"
)

// Default pipeline thresholds. They are tunable policy, not correctness
// requirements; override them through Config.
const (
	// DefaultMinLineLen is the trimmed length a line must exceed to
	// survive cleaning. Shorter lines are usually usernames or dates.
	DefaultMinLineLen = 15

	// DefaultMinReviewLen is the length a cleaned candidate must exceed
	// to count as a review.
	DefaultMinReviewLen = 20
)

// DefaultNoisePatterns returns the boilerplate patterns stripped from raw
// review text: star ratings, region/date stamps, verification badges,
// interaction affordances, and helpfulness vote counts.
func DefaultNoisePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s*out of 5 stars?`),
		regexp.MustCompile(`(?i)reviewed in (?:the )?[\p{L}][\p{L} ]* on [\p{L}]+ \d{1,2},? \d{4}`),
		regexp.MustCompile(`(?i)verified purchase`),
		regexp.MustCompile(`(?im)^[ \t]*helpful[ \t]*$`),
		regexp.MustCompile(`(?im)^[ \t]*report(?: abuse)?[ \t]*$`),
		regexp.MustCompile(`(?i)\d+\s+people found this helpful`),
		regexp.MustCompile(`(?i)one person found this helpful`),
	}
}

// Config holds the pipeline's tunable policy: noise patterns and the
// cleaning/collection thresholds.
type Config struct {
	// NoisePatterns are deleted from raw text before line filtering,
	// each applied independently to the full string in order.
	NoisePatterns []*regexp.Regexp

	// MinLineLen: lines whose trimmed length does not exceed this are
	// dropped during cleaning, as are lines without a space.
	MinLineLen int

	// MinReviewLen: cleaned candidates must exceed this length to be
	// collected.
	MinReviewLen int

	// MaxReviews caps the collected result.
	MaxReviews int
}

// DefaultConfig returns the pipeline configuration with default thresholds.
func DefaultConfig() Config {
	return Config{
		NoisePatterns: DefaultNoisePatterns(),
		MinLineLen:    DefaultMinLineLen,
		MinReviewLen:  DefaultMinReviewLen,
		MaxReviews:    revlens.MaxReviews,
	}
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Cleaner strips noise patterns and low-signal lines from raw text blocks.
// Clean is a pure function of its input and the configuration.
type Cleaner struct {
	cfg Config
}

// NewCleaner creates a Cleaner with the given configuration.
func NewCleaner(cfg Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean removes every configured noise pattern, drops lines that look like
// usernames or dates (short, or without a space), and collapses the rest
// into a single whitespace-normalized string. Boilerplate-only input
// degrades to an empty string; it is never an error.
func (c *Cleaner) Clean(raw string) string {
	if raw == "" {
		return ""
	}

	s := raw
	for _, p := range c.cfg.NoisePatterns {
		s = p.ReplaceAllString(s, "")
	}

	var kept []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if utf8.RuneCountInString(trimmed) <= c.cfg.MinLineLen {
			continue
		}
		if !strings.Contains(trimmed, " ") {
			continue
		}
		kept = append(kept, trimmed)
	}

	joined := whitespaceRE.ReplaceAllString(strings.Join(kept, " "), " ")
	return strings.TrimSpace(joined)
}
