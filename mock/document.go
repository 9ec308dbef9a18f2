package mock

import (
	"context"

	"github.com/reviewlens/revlens"
)

var _ revlens.Document = (*Document)(nil)

// Document is a mock implementation of revlens.Document.
type Document struct {
	SelectAllFn   func(selector string) ([]string, error)
	SelectFirstFn func(selector string) (string, error)
	LocationFn    func() string
	CloseFn       func() error
}

func (d *Document) SelectAll(selector string) ([]string, error) {
	return d.SelectAllFn(selector)
}

func (d *Document) SelectFirst(selector string) (string, error) {
	return d.SelectFirstFn(selector)
}

func (d *Document) Location() string {
	if d.LocationFn == nil {
		return ""
	}
	return d.LocationFn()
}

func (d *Document) Close() error {
	if d.CloseFn == nil {
		return nil
	}
	return d.CloseFn()
}

var _ revlens.DocumentAccessor = (*DocumentAccessor)(nil)

// DocumentAccessor is a mock implementation of revlens.DocumentAccessor.
type DocumentAccessor struct {
	AcquireFn func(ctx context.Context, url string) (revlens.Document, error)
	CloseFn   func() error
}

func (a *DocumentAccessor) Acquire(ctx context.Context, url string) (revlens.Document, error) {
	return a.AcquireFn(ctx, url)
}

func (a *DocumentAccessor) Close() error {
	if a.CloseFn == nil {
		return nil
	}
	return a.CloseFn()
}
