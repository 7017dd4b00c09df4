package linkedin

import (
	"linkedin-scraper/internal/crawler"
	"linkedin-scraper/internal/scraper"
	"net/url"
	"strings"
)

// DefaultSearchBaseURL is LinkedIn's public (guest) job search page.
const DefaultSearchBaseURL = "https://www.linkedin.com/jobs/search"

const searchTrackingParam = "public_jobs_jobs-search-bar_search-submit"

// BuildSearchURL returns the seed URL for q on LinkedIn.
func BuildSearchURL(q scraper.SearchQuery) string {
	return BuildSearchURLFrom(DefaultSearchBaseURL, q)
}

// BuildSearchURLFrom builds the seed URL against another base (mirror, test server).
// Parameters keep a fixed order; values are query-escaped, spaces become '+'.
// Inputs are not validated: an empty title gives "keywords=".
func BuildSearchURLFrom(base string, q scraper.SearchQuery) string {
	params := [][2]string{
		{"keywords", q.Title},
		{"location", q.Location},
		{"trk", searchTrackingParam},
		{"position", "1"},
		{"pageNum", "0"},
	}

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('?')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p[0]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String()
}

// SeedRequest is the search request a run starts from.
func SeedRequest(base string, q scraper.SearchQuery) crawler.Request {
	if base == "" {
		base = DefaultSearchBaseURL
	}
	return crawler.NewRequest(crawler.KindSearch, BuildSearchURLFrom(base, q))
}
