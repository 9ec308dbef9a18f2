package rod

import (
	"github.com/go-rod/rod"
	"github.com/reviewlens/revlens"
)

// Ensure Document implements revlens.Document at compile time.
var _ revlens.Document = (*Document)(nil)

// Document wraps a live browser page. Text is read through innerText so
// results reflect layout-rendered text; textContent is the fallback for
// nodes the layout engine does not render.
type Document struct {
	page *rod.Page
	url  string
}

// elementTextJS prefers layout-rendered text over raw markup text.
const elementTextJS = `() => this.innerText !== undefined ? this.innerText : (this.textContent || "")`

// SelectAll returns the rendered text of every element matching the
// selector, in document order. Query failures are reported as ESELECTOR
// errors so the collector can skip the selector and continue.
func (d *Document) SelectAll(selector string) ([]string, error) {
	elements, err := d.page.Elements(selector)
	if err != nil {
		return nil, revlens.Errorf(revlens.ESELECTOR, "selector %q failed: %v", selector, err)
	}

	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		obj, err := el.Eval(elementTextJS)
		if err != nil {
			// A single stale element must not abort the selector.
			continue
		}
		texts = append(texts, obj.Value.Str())
	}
	return texts, nil
}

// SelectFirst returns the rendered text of the first element matching the
// selector, or an empty string if nothing matches.
func (d *Document) SelectFirst(selector string) (string, error) {
	elements, err := d.page.Elements(selector)
	if err != nil {
		return "", revlens.Errorf(revlens.ESELECTOR, "selector %q failed: %v", selector, err)
	}
	if len(elements) == 0 {
		return "", nil
	}

	obj, err := elements[0].Eval(elementTextJS)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

// Location returns the page's current URL, falling back to the navigated
// URL if the page cannot report it.
func (d *Document) Location() string {
	info, err := d.page.Info()
	if err != nil || info.URL == "" {
		return d.url
	}
	return info.URL
}

// Close releases the underlying page.
func (d *Document) Close() error {
	return d.page.Close()
}
