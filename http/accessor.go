// Package http provides a revlens.DocumentAccessor for pages that render
// server-side. It fetches HTML over plain HTTP and parses it statically;
// no JavaScript is executed, so it only suits sites whose review markup is
// present in the initial response.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/reviewlens/revlens"
	"github.com/reviewlens/revlens/goquery"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Accessor implements revlens.DocumentAccessor at compile time.
var _ revlens.DocumentAccessor = (*Accessor)(nil)

// Accessor fetches and parses static pages.
type Accessor struct {
	client *http.Client
	delays []time.Duration
}

// Option configures an Accessor.
type Option func(*Accessor)

// WithTimeout sets the per-request timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Accessor) {
		a.client.Timeout = d
	}
}

// WithRetryDelays sets the backoff schedule for transient failures.
// Useful in tests to avoid real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(a *Accessor) {
		a.delays = delays
	}
}

// NewAccessor creates an HTTP-based Accessor.
func NewAccessor(opts ...Option) *Accessor {
	a := &Accessor{
		client: &http.Client{Timeout: DefaultTimeout},
		delays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Acquire fetches the URL with retry and parses the body into a static
// document.
func (a *Accessor) Acquire(ctx context.Context, url string) (revlens.Document, error) {
	html, err := a.fetchWithRetry(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocument(html, url)
}

// Close releases resources. The underlying http.Client needs no cleanup.
func (a *Accessor) Close() error {
	return nil
}

// fetchWithRetry attempts the fetch with exponential backoff, one attempt
// per configured delay plus the initial try.
func (a *Accessor) fetchWithRetry(ctx context.Context, url string) (string, error) {
	maxAttempts := len(a.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := a.fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(a.delays[attempt]):
		}
	}

	return "", lastErr
}

func (a *Accessor) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
