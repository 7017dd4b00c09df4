package crawler

import (
	"context"
	"errors"
)

var (
	// ErrElementNotFound is returned when a selector matches nothing on the page.
	ErrElementNotFound = errors.New("element not found")
	// ErrNoHandler is returned for requests whose kind has no route.
	ErrNoHandler = errors.New("no handler for request kind")
	// ErrEmptyURL is returned for requests built from an anchor without href.
	ErrEmptyURL = errors.New("request has no url")
)

// Page is one loaded document a handler reads from.
type Page interface {
	// Navigate loads url, following redirects.
	Navigate(ctx context.Context, url string) error
	// WaitForLoad blocks until the page reports its load event.
	WaitForLoad(ctx context.Context) error
	// Hrefs returns the resolved href of every element matching selector,
	// one entry per element; an element without href yields "".
	Hrefs(ctx context.Context, selector string) ([]string, error)
	// Text returns the text content of the first element matching selector.
	Text(ctx context.Context, selector string) (string, error)
	// URL is the final URL after redirects.
	URL() string
	Close() error
}

// Engine hands out pages. Implementations must be safe for concurrent NewPage calls.
type Engine interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}
