// Package goquery provides a revlens.Document implementation over
// statically parsed HTML. Static documents have no layout, so markup text
// stands in for rendered text, which the Document contract allows as a
// fallback.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/reviewlens/revlens"
)

// Ensure Document implements revlens.Document at compile time.
var _ revlens.Document = (*Document)(nil)

// Document wraps a parsed HTML document.
type Document struct {
	doc *goquery.Document
	url string
}

// NewDocument parses HTML into a queryable document. The url is reported
// as the document's source location.
func NewDocument(html, url string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, revlens.Errorf(revlens.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, url: url}, nil
}

// SelectAll returns the markup text of every element matching the selector,
// in document order. A selector that fails to compile returns an ESELECTOR
// error rather than panicking, so callers can skip it and continue.
func (d *Document) SelectAll(selector string) ([]string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, revlens.Errorf(revlens.ESELECTOR, "invalid selector %q: %v", selector, err)
	}

	var texts []string
	d.doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		texts = append(texts, sel.Text())
	})
	return texts, nil
}

// SelectFirst returns the markup text of the first element matching the
// selector, or an empty string if nothing matches.
func (d *Document) SelectFirst(selector string) (string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", revlens.Errorf(revlens.ESELECTOR, "invalid selector %q: %v", selector, err)
	}

	sel := d.doc.FindMatcher(matcher).First()
	if sel.Length() == 0 {
		return "", nil
	}
	return sel.Text(), nil
}

// Location returns the document's source URL.
func (d *Document) Location() string {
	return d.url
}

// Close is a no-op for static documents.
func (d *Document) Close() error {
	return nil
}
