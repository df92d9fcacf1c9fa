package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// source loads a template body for one locator scheme.
// New schemes are added as new source implementations, not deeper branching.
type source interface {
	load(locator string) (Document, error)
}

// Loader resolves template locators into parsed templates.
type Loader struct {
	// BaseDir anchors relative filesystem locators. Empty means the
	// locator is used as given.
	BaseDir string
}

// NewLoader creates a Loader with the given base directory for relative paths.
func NewLoader(baseDir string) *Loader {
	return &Loader{BaseDir: baseDir}
}

// Load reads and parses the template behind locator.
// Each call re-reads the backing store; there is no caching.
func (l *Loader) Load(locator string) (*Template, error) {
	body, err := l.sourceFor(locator).load(locator)
	if err != nil {
		return nil, err
	}
	return &Template{Locator: locator, Body: body}, nil
}

// sourceFor selects the loading strategy for a locator.
func (l *Loader) sourceFor(locator string) source {
	if strings.HasPrefix(strings.ToLower(locator), "s3://") {
		return objectSource{}
	}
	return fileSource{baseDir: l.BaseDir}
}

// fileSource loads templates from the local filesystem.
type fileSource struct {
	baseDir string
}

func (s fileSource) load(locator string) (Document, error) {
	path := locator
	if !filepath.IsAbs(path) && s.baseDir != "" {
		path = filepath.Join(s.baseDir, path)
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Locator: locator, Err: err}
	}

	var body Document
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, &ParseError{Locator: locator, Err: err}
	}

	return body, nil
}

// objectSource is the placeholder for s3:// locators.
type objectSource struct{}

func (objectSource) load(locator string) (Document, error) {
	return nil, fmt.Errorf("cannot load %s: %w", locator, ErrUnsupportedLocator)
}
