package template

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLocator indicates a locator scheme without a loading backend.
var ErrUnsupportedLocator = errors.New("unsupported template locator scheme")

// NotFoundError indicates the template could not be read from its locator.
type NotFoundError struct {
	Locator string
	Err     error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not load template from %s: %v", e.Locator, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError indicates the template content is not a valid JSON document.
type ParseError struct {
	Locator string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse template from %s: %v", e.Locator, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
