// Package rod provides a revlens.DocumentAccessor backed by headless
// Chrome browser automation. Pages are fully rendered before the pipeline
// queries them, so JavaScript-built review sections are visible.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod/lib/proto"
	"github.com/reviewlens/revlens"
)

// Ensure Accessor implements revlens.DocumentAccessor at compile time.
var _ revlens.DocumentAccessor = (*Accessor)(nil)

// Accessor supplies live browser documents. It is safe for concurrent use
// by multiple goroutines.
type Accessor struct {
	manager *BrowserManager
}

// NewAccessor launches a headless Chrome browser. Close must be called when
// the Accessor is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewAccessor(opts ...ManagerOption) (*Accessor, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, err
	}
	return &Accessor{manager: manager}, nil
}

// Acquire navigates a fresh page to the URL, waits for it to load, and
// returns it as a queryable document. The caller owns the document and must
// Close it to release the page.
func (a *Accessor) Acquire(ctx context.Context, url string) (revlens.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := a.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	a.manager.IncrementPageCount()

	return &Document{page: page, url: url}, nil
}

// Close releases browser resources.
func (a *Accessor) Close() error {
	return a.manager.Close()
}
