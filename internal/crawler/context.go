package crawler

import (
	"context"
	"linkedin-scraper/internal/scraper"
)

// Handler processes one request on an already navigated page.
type Handler func(ctx context.Context, cc *Context) error

// Context is what a handler sees for a single attempt.
// Requests and records are only committed if the handler returns nil.
type Context struct {
	Page    Page
	Request Request

	requests []Request
	records  []scraper.JobRecord
}

// AddRequests schedules follow-up requests.
func (c *Context) AddRequests(reqs ...Request) {
	c.requests = append(c.requests, reqs...)
}

// PushData emits a record to the dataset.
func (c *Context) PushData(rec scraper.JobRecord) {
	c.records = append(c.records, rec)
}

// Requests returns what this attempt has queued so far.
func (c *Context) Requests() []Request {
	return c.requests
}

// Records returns what this attempt has pushed so far.
func (c *Context) Records() []scraper.JobRecord {
	return c.records
}
