// Package crawlertest provides an in-memory crawler.Engine for tests.
package crawlertest

import (
	"context"
	"errors"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"sync"
)

// Doc describes what a fake page returns once navigated.
type Doc struct {
	// FinalURL is reported by Page.URL; defaults to the requested URL.
	FinalURL string
	Hrefs    map[string][]string
	Texts    map[string]string
	NavErr   error
	LoadErr  error
}

// Engine serves Docs keyed by URL. Unknown URLs fail navigation.
type Engine struct {
	mu     sync.Mutex
	docs   map[string]Doc
	visits map[string]int
	opened int
	closed int
}

func NewEngine(docs map[string]Doc) *Engine {
	return &Engine{docs: docs, visits: make(map[string]int)}
}

func (e *Engine) NewPage(ctx context.Context) (crawler.Page, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opened++
	return &Page{engine: e}, nil
}

func (e *Engine) Close() error { return nil }

// Visits returns how many times url was navigated to.
func (e *Engine) Visits(url string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visits[url]
}

// OpenPages is the number of pages opened and not yet closed.
func (e *Engine) OpenPages() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opened - e.closed
}

type Page struct {
	engine *Engine
	doc    *Doc
	url    string
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	p.engine.mu.Lock()
	p.engine.visits[url]++
	doc, ok := p.engine.docs[url]
	p.engine.mu.Unlock()

	if !ok {
		return fmt.Errorf("fake: no document for %s", url)
	}
	if doc.NavErr != nil {
		return doc.NavErr
	}
	p.doc = &doc
	p.url = url
	if doc.FinalURL != "" {
		p.url = doc.FinalURL
	}
	return nil
}

func (p *Page) WaitForLoad(ctx context.Context) error {
	if p.doc == nil {
		return errors.New("fake: page not navigated")
	}
	return p.doc.LoadErr
}

func (p *Page) Hrefs(ctx context.Context, selector string) ([]string, error) {
	if p.doc == nil {
		return nil, errors.New("fake: page not navigated")
	}
	return p.doc.Hrefs[selector], nil
}

func (p *Page) Text(ctx context.Context, selector string) (string, error) {
	if p.doc == nil {
		return "", errors.New("fake: page not navigated")
	}
	text, ok := p.doc.Texts[selector]
	if !ok {
		return "", fmt.Errorf("%w: %s", crawler.ErrElementNotFound, selector)
	}
	return text, nil
}

func (p *Page) URL() string { return p.url }

func (p *Page) Close() error {
	p.engine.mu.Lock()
	defer p.engine.mu.Unlock()
	p.engine.closed++
	return nil
}
