// Queue-driven crawler
// Workers pull requests, open a page per request, navigate,
// and hand the page to the handler routed by request kind

package crawler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"
)

// Router maps a request kind to its handler. A nil handler fails the request.
type Router func(kind Kind) Handler

type Options struct {
	MaxConcurrency    int
	MaxRetries        int
	RequestsPerSecond float64
	Burst             int
	RequestTimeout    time.Duration

	// Dedup enqueues each URL at most once per run.
	Dedup bool
	// Skip drops newly discovered requests before they are queued.
	Skip func(req Request) bool
	// OnFailure is called with the page of a failed handler attempt, before the page is closed.
	OnFailure func(page Page, req Request, err error)
}

// DefaultOptions holds the runtime defaults. New only falls back to them
// for MaxConcurrency and RequestTimeout.
var DefaultOptions = Options{
	MaxConcurrency:    4,
	MaxRetries:        3,
	RequestsPerSecond: 1,
	Burst:             2,
	RequestTimeout:    60 * time.Second,
}

type FailedRequest struct {
	Request Request
	Err     error
}

type Stats struct {
	Succeeded int
	Retried   int
	Skipped   int
	Failed    []FailedRequest
}

type Crawler struct {
	engine  Engine
	route   Router
	opts    Options
	limiter *HostLimiter
	dataset *Dataset

	mu    sync.Mutex
	stats Stats
	seen  mapset.Set[string]
}

func New(engine Engine, route Router, opts Options) *Crawler {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = DefaultOptions.MaxConcurrency
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultOptions.RequestTimeout
	}
	return &Crawler{
		engine:  engine,
		route:   route,
		opts:    opts,
		limiter: NewHostLimiter(opts.RequestsPerSecond, opts.Burst),
		dataset: &Dataset{},
	}
}

// Dataset holds every record pushed by successful handler attempts.
func (c *Crawler) Dataset() *Dataset {
	return c.dataset
}

// Run processes seeds and everything they enqueue until the queue drains.
// It returns ctx.Err() if the run was cancelled.
func (c *Crawler) Run(ctx context.Context, seeds ...Request) (Stats, error) {
	c.mu.Lock()
	c.stats = Stats{}
	c.seen = nil
	if c.opts.Dedup {
		c.seen = mapset.NewSet[string]()
	}
	c.mu.Unlock()

	q := newRequestQueue()
	q.push(c.admit(seeds)...)

	stop := context.AfterFunc(ctx, q.close)
	defer stop()

	var g errgroup.Group
	for i := 0; i < c.opts.MaxConcurrency; i++ {
		g.Go(func() error {
			for {
				req, ok := q.next()
				if !ok {
					return nil
				}
				q.done(c.process(ctx, req)...)
			}
		})
	}
	_ = g.Wait()

	c.mu.Lock()
	stats := c.stats
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	return stats, nil
}

// admit applies Skip and Dedup to newly discovered requests.
func (c *Crawler) admit(reqs []Request) []Request {
	out := make([]Request, 0, len(reqs))
	for _, req := range reqs {
		if c.opts.Skip != nil && c.opts.Skip(req) {
			c.mu.Lock()
			c.stats.Skipped++
			c.mu.Unlock()
			continue
		}
		if c.seen != nil && !c.seen.Add(req.URL) {
			c.mu.Lock()
			c.stats.Skipped++
			c.mu.Unlock()
			continue
		}
		out = append(out, req)
	}
	return out
}

// process runs one attempt and returns what should be queued next:
// the handler's follow-ups on success, the request itself on a retryable failure.
func (c *Crawler) process(ctx context.Context, req Request) []Request {
	handler := c.route(req.Kind)
	if handler == nil {
		c.fail(req, fmt.Errorf("%w: %s", ErrNoHandler, req.Kind))
		return nil
	}
	if req.URL == "" {
		c.fail(req, ErrEmptyURL)
		return nil
	}

	if err := c.limiter.WaitURL(ctx, req.URL); err != nil {
		return nil
	}

	rctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	log.Printf("🌐 [%s] %s", req.Kind, req.URL)
	cc, err := c.attempt(rctx, req, handler)
	if err == nil {
		c.dataset.push(req.URL, cc.records...)
		c.mu.Lock()
		c.stats.Succeeded++
		c.mu.Unlock()
		return c.admit(cc.requests)
	}

	if ctx.Err() != nil {
		return nil
	}

	if req.RetryCount < c.opts.MaxRetries {
		req.RetryCount++
		log.Printf("  ⚠️ [%s] attempt %d failed, retrying: %v", req.Kind, req.RetryCount, err)
		c.mu.Lock()
		c.stats.Retried++
		c.mu.Unlock()
		return []Request{req}
	}

	c.fail(req, err)
	return nil
}

func (c *Crawler) attempt(ctx context.Context, req Request, handler Handler) (*Context, error) {
	page, err := c.engine.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(ctx, req.URL); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", req.URL, err)
	}

	cc := &Context{Page: page, Request: req}
	if err := handler(ctx, cc); err != nil {
		if c.opts.OnFailure != nil {
			c.opts.OnFailure(page, req, err)
		}
		return nil, err
	}
	return cc, nil
}

func (c *Crawler) fail(req Request, err error) {
	log.Printf("  ❌ [%s] %s failed after %d retries: %v", req.Kind, req.URL, req.RetryCount, err)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.Failed = append(c.stats.Failed, FailedRequest{Request: req, Err: err})
}
