package crawler

import (
	"linkedin-scraper/internal/scraper"
	"sync"
)

// Dataset collects records pushed by handlers, along with the URL of the
// request whose handler pushed them.
// Order across workers is not guaranteed.
type Dataset struct {
	mu      sync.Mutex
	records []scraper.JobRecord
	sources []string
}

func (d *Dataset) push(requestURL string, recs ...scraper.JobRecord) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, rec := range recs {
		d.records = append(d.records, rec)
		d.sources = append(d.sources, requestURL)
	}
}

// Records returns a copy of everything pushed so far.
func (d *Dataset) Records() []scraper.JobRecord {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]scraper.JobRecord, len(d.records))
	copy(out, d.records)
	return out
}

// SourceURLs returns the request URL behind each record, index-aligned with Records.
// It differs from the record's URL when navigation was redirected.
func (d *Dataset) SourceURLs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.sources))
	copy(out, d.sources)
	return out
}

func (d *Dataset) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}
