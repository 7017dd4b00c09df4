// Run one search end to end: seed URL -> crawl -> CSV (+ optional sinks)

package runner

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/crawler"
	"linkedin-scraper/internal/dedup"
	"linkedin-scraper/internal/export"
	"linkedin-scraper/internal/scraper"
	"linkedin-scraper/internal/scraper/linkedin"
	"log"
	"time"
)

// JobSink stores exported records somewhere besides the CSV.
type JobSink interface {
	SaveJobs(ctx context.Context, q scraper.SearchQuery, records []scraper.JobRecord) error
}

// Notifier receives run outcomes (the Telegram bot in production).
type Notifier interface {
	SendJob(rec scraper.JobRecord) error
	SendStatus(message string) error
	SendError(err error) error
}

type Deps struct {
	Engine  crawler.Engine
	Options crawler.Options
	// SearchBaseURL defaults to linkedin.DefaultSearchBaseURL.
	SearchBaseURL string

	// Everything below is optional.
	SeenCache  *dedup.JobCache
	JSONLogDir string
	Sink       JobSink
	Notifier   Notifier
	SendJobs   bool
}

type Summary struct {
	Query   scraper.SearchQuery
	SeedURL string
	CSVPath string
	Records []scraper.JobRecord
	Stats   crawler.Stats
}

// Run crawls q and writes "<q.OutputName>.csv". An interrupted crawl writes nothing.
func Run(ctx context.Context, deps Deps, q scraper.SearchQuery) (Summary, error) {
	seed := linkedin.SeedRequest(deps.SearchBaseURL, q)
	summary := Summary{Query: q, SeedURL: seed.URL, CSVPath: export.CSVPath(q.OutputName)}

	opts := deps.Options
	if deps.SeenCache != nil {
		opts.Skip = deps.SeenCache.SkipRequest
	}

	log.Printf("💼 Searching LinkedIn Jobs: %q in %q", q.Title, q.Location)
	log.Printf("  🌐 Seed URL: %s", seed.URL)

	c := crawler.New(deps.Engine, linkedin.Route, opts)
	stats, err := c.Run(ctx, seed)
	summary.Stats = stats
	summary.Records = c.Dataset().Records()
	sources := c.Dataset().SourceURLs()
	if err != nil {
		err = fmt.Errorf("crawl interrupted: %w", err)
		notifyError(deps.Notifier, err)
		return summary, err
	}

	log.Printf("📦 Total jobs collected: %d (%d failed requests, %d skipped)", len(summary.Records), len(stats.Failed), stats.Skipped)

	if err := export.WriteCSV(summary.CSVPath, summary.Records); err != nil {
		notifyError(deps.Notifier, err)
		return summary, err
	}
	log.Printf("📁 Results saved to %s", summary.CSVPath)

	if deps.JSONLogDir != "" {
		if path, err := export.SaveJSON(deps.JSONLogDir, summary.Records, time.Now()); err != nil {
			log.Printf("⚠️ %v", err)
		} else {
			log.Printf("📁 JSON log saved to %s", path)
		}
	}

	//remember both the discovered href and the final URL, redirects make them differ
	if deps.SeenCache != nil {
		urls := make([]string, 0, 2*len(summary.Records))
		for _, rec := range summary.Records {
			urls = append(urls, rec.URL)
		}
		urls = append(urls, sources...)
		deps.SeenCache.Add(urls)
	}

	if deps.Sink != nil {
		if err := deps.Sink.SaveJobs(ctx, q, summary.Records); err != nil {
			log.Printf("⚠️ Failed to save jobs to database: %v", err)
		} else {
			log.Printf("💾 Saved %d jobs to database", len(summary.Records))
		}
	}

	notify(deps, summary)
	return summary, nil
}

// FormatSummary is the status line sent after a successful run.
func FormatSummary(s Summary) string {
	return fmt.Sprintf("Found %d jobs for %q in %q (%d failed requests). Saved to %s.",
		len(s.Records), s.Query.Title, s.Query.Location, len(s.Stats.Failed), s.CSVPath)
}

func notify(deps Deps, s Summary) {
	if deps.Notifier == nil {
		return
	}
	if deps.SendJobs {
		for _, rec := range s.Records {
			if err := deps.Notifier.SendJob(rec); err != nil {
				log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			}
		}
	}
	if err := deps.Notifier.SendStatus(FormatSummary(s)); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}

func notifyError(n Notifier, err error) {
	if n == nil {
		return
	}
	if sendErr := n.SendError(err); sendErr != nil {
		log.Printf("⚠️ Failed to send error to Telegram: %v", sendErr)
	}
}
