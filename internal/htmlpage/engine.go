// Static HTML engine: fetch over HTTP, query with goquery.
// LinkedIn's guest job pages are server-rendered, so no browser is needed to read them.

package htmlpage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"linkedin-scraper/internal/crawler"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Engine struct {
	client    *http.Client
	userAgent string
}

// NewEngine returns an engine using client (http.DefaultClient if nil).
func NewEngine(client *http.Client, userAgent string) *Engine {
	if client == nil {
		client = http.DefaultClient
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Engine{client: client, userAgent: userAgent}
}

func (e *Engine) NewPage(ctx context.Context) (crawler.Page, error) {
	return &Page{engine: e}, nil
}

func (e *Engine) Close() error {
	e.client.CloseIdleConnections()
	return nil
}

type Page struct {
	engine *Engine
	doc    *goquery.Document
	final  *url.URL
}

// Navigate fetches rawURL. Redirects are followed by the client; non-2xx is an error.
func (p *Page) Navigate(ctx context.Context, rawURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", p.engine.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.engine.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("received non-2xx response code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse HTML: %w", err)
	}
	p.doc = doc
	p.final = resp.Request.URL
	return nil
}

// WaitForLoad returns at once: the document is complete once parsed.
func (p *Page) WaitForLoad(ctx context.Context) error {
	if p.doc == nil {
		return errors.New("page not loaded")
	}
	return ctx.Err()
}

// Hrefs returns every matching element's href resolved against the page URL.
// Elements without href yield "", like the DOM href property.
func (p *Page) Hrefs(ctx context.Context, selector string) ([]string, error) {
	if p.doc == nil {
		return nil, errors.New("page not loaded")
	}
	var hrefs []string
	p.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			hrefs = append(hrefs, "")
			return
		}
		hrefs = append(hrefs, p.resolve(strings.TrimSpace(href)))
	})
	return hrefs, nil
}

func (p *Page) Text(ctx context.Context, selector string) (string, error) {
	if p.doc == nil {
		return "", errors.New("page not loaded")
	}
	sel := p.doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %s", crawler.ErrElementNotFound, selector)
	}
	return sel.Text(), nil
}

func (p *Page) URL() string {
	if p.final == nil {
		return ""
	}
	return p.final.String()
}

func (p *Page) Close() error {
	p.doc = nil
	return nil
}

func (p *Page) resolve(href string) string {
	if p.final == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return p.final.ResolveReference(ref).String()
}
