package revlens

import "context"

// Document is a queryable view of one page. Implementations may wrap a live
// browser page or statically parsed HTML; the extraction pipeline does not
// care which.
type Document interface {
	// SelectAll returns the text of every element matching the selector,
	// in document order. Implementations prefer layout-rendered text and
	// fall back to raw markup text when no layout exists. A selector that
	// matches nothing returns an empty slice and no error; only query
	// failures (malformed selectors, lost pages) return an error, coded
	// ESELECTOR where the selector itself is at fault.
	SelectAll(selector string) ([]string, error)

	// SelectFirst returns the text of the first element matching the
	// selector, or an empty string if nothing matches.
	SelectFirst(selector string) (string, error)

	// Location returns the document's source location (URL).
	Location() string

	// Close releases any resources held by the document. Static documents
	// treat this as a no-op.
	Close() error
}

// DocumentAccessor grants access to documents. It decouples the extraction
// algorithm from however the host environment supplies pages: a headless
// browser, a plain HTTP fetch, or a test fixture.
type DocumentAccessor interface {
	// Acquire produces a Document for the given URL. Failure to produce
	// any document at all is fatal to an extraction pass and surfaces as
	// EUNAVAILABLE to callers of the pipeline.
	Acquire(ctx context.Context, url string) (Document, error)

	// Close releases accessor resources.
	// Must be called when the accessor is no longer needed.
	Close() error
}
