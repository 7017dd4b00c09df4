package linkedin

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"linkedin-scraper/internal/scraper"
	"log"
)

// Selectors of LinkedIn's public guest pages.
const (
	ResultsLinkSelector = "ul.jobs-search__results-list a"
	TitleSelector       = "div.top-card-layout__entity-info h1.top-card-layout__title"
	CompanySelector     = "span.topcard__flavor a"
	PostedTimeSelector  = "div.topcard__flavor-row span.posted-time-ago__text"
)

// Route picks the handler for a request kind.
func Route(kind crawler.Kind) crawler.Handler {
	switch kind {
	case crawler.KindSearch:
		return HandleSearch
	case crawler.KindJobListing:
		return HandleJobListing
	default:
		return nil
	}
}

// HandleSearch queues one job listing request per link in the results list.
// An empty list is not an error.
func HandleSearch(ctx context.Context, cc *crawler.Context) error {
	hrefs, err := cc.Page.Hrefs(ctx, ResultsLinkSelector)
	if err != nil {
		return fmt.Errorf("failed to read result links: %w", err)
	}

	log.Printf("  🔗 Found %d job links on %s", len(hrefs), cc.Page.URL())
	for _, href := range hrefs {
		cc.AddRequests(crawler.NewRequest(crawler.KindJobListing, href))
	}
	return nil
}

// HandleJobListing extracts title, company and posting time from a job page.
// A missing field fails the whole request; nothing partial is pushed.
func HandleJobListing(ctx context.Context, cc *crawler.Context) error {
	if err := cc.Page.WaitForLoad(ctx); err != nil {
		return fmt.Errorf("job page did not load: %w", err)
	}

	title, err := cc.Page.Text(ctx, TitleSelector)
	if err != nil {
		return fmt.Errorf("job title: %w", err)
	}
	company, err := cc.Page.Text(ctx, CompanySelector)
	if err != nil {
		return fmt.Errorf("company name: %w", err)
	}
	posted, err := cc.Page.Text(ctx, PostedTimeSelector)
	if err != nil {
		return fmt.Errorf("time of posting: %w", err)
	}

	rec := scraper.JobRecord{
		Title:       scraper.CollapseWhitespace(title),
		CompanyName: scraper.CollapseWhitespace(company),
		PostedTime:  scraper.CollapseWhitespace(posted),
		URL:         cc.Page.URL(),
	}
	cc.PushData(rec)
	log.Printf("      ✅ %s - %s (%s)", rec.Title, rec.CompanyName, rec.PostedTime)
	return nil
}
