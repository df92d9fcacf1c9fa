// Package template resolves template locators to parsed stack templates.
//
// A locator is either a plain filesystem path (absolute, or relative to a
// configured base directory) or an s3:// URL. Object-storage loading is a
// declared capability that is not implemented; those locators fail fast with
// ErrUnsupportedLocator.
package template

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed template body. The schema is opaque to this tool;
// the document is passed through verbatim to the provider.
type Document map[string]any

// Template couples a locator with its loaded body.
// The body is loaded exactly once and never mutated afterwards.
type Template struct {
	Locator string
	Body    Document
}

// JSON serializes the template body to the wire format the provider expects.
func (t *Template) JSON() (string, error) {
	data, err := json.Marshal(t.Body)
	if err != nil {
		return "", fmt.Errorf("failed to serialize template %s: %w", t.Locator, err)
	}
	return string(data), nil
}
