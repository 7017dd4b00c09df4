package main

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/browser"
	"linkedin-scraper/internal/config"
	"linkedin-scraper/internal/crawler"
	"linkedin-scraper/internal/database"
	"linkedin-scraper/internal/dedup"
	"linkedin-scraper/internal/htmlpage"
	"linkedin-scraper/internal/runner"
	"linkedin-scraper/internal/scraper"
	"linkedin-scraper/internal/telegram"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const usage = "usage: scraper <title> <location> <output-name>"

func main() {
	//load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	q, err := queryFromArgs(os.Args[1:], cfg)
	if err != nil {
		log.Fatalf("❌ %v\n%s", err, usage)
	}
	log.Printf("🔧 Config loaded. Engine: %s, concurrency: %d, retries: %d", cfg.Engine, cfg.MaxConcurrency, *cfg.MaxRetries)

	//setup context with run timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout())
	defer cancel()

	log.Println("🚀 Starting LinkedIn job scraper...")

	engine, onFailure, err := newEngine(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to init %s engine: %v", cfg.Engine, err)
	}
	defer engine.Close()

	deps := runner.Deps{
		Engine:        engine,
		Options:       cfg.CrawlerOptions(),
		SearchBaseURL: cfg.SearchBaseURL,
		JSONLogDir:    cfg.JSONLogDir,
		SendJobs:      cfg.TelegramSendJobs,
	}
	deps.Options.OnFailure = onFailure

	if cfg.SeenCache {
		deps.SeenCache = dedup.NewJobCache(cfg.CachePath)
	}

	if cfg.TelegramEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("⚠️ Failed to init Telegram Bot: %v. Continuing without notifications.", err)
		} else {
			deps.Notifier = bot
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	if cfg.DatabaseURL != "" {
		repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️ Database unavailable: %v. Continuing with CSV only.", err)
		} else {
			defer repo.Close()
			deps.Sink = repo
			log.Println("🗄️ Database connected.")
		}
	}

	summary, err := runner.Run(ctx, deps, q)
	if err != nil {
		log.Fatalf("❌ Run failed: %v", err)
	}

	log.Printf("🏁 Execution finished. %d jobs written to %s", len(summary.Records), summary.CSVPath)
}

// queryFromArgs takes title, location and output name positionally; missing ones come from config.
// Empty title or location is passed through as an empty search parameter.
func queryFromArgs(args []string, cfg *config.Config) (scraper.SearchQuery, error) {
	if len(args) > 3 {
		return scraper.SearchQuery{}, fmt.Errorf("too many arguments")
	}
	q := scraper.SearchQuery{
		Title:      cfg.Title,
		Location:   cfg.Location,
		OutputName: cfg.OutputName,
	}
	if len(args) > 0 {
		q.Title = args[0]
	}
	if len(args) > 1 {
		q.Location = args[1]
	}
	if len(args) > 2 {
		q.OutputName = args[2]
	}
	return q, nil
}

func newEngine(cfg *config.Config) (crawler.Engine, func(crawler.Page, crawler.Request, error), error) {
	navTimeout := time.Duration(cfg.NavigationTimeoutMs) * time.Millisecond

	if cfg.Engine == config.EngineHTTP {
		client := &http.Client{Timeout: navTimeout}
		return htmlpage.NewEngine(client, cfg.UserAgent), nil, nil
	}

	cookieFile := filepath.Join(cfg.CookiesPath, "cookies-linkedin.json")
	cookies, err := browser.LoadCookies(cookieFile)
	if err != nil {
		log.Printf("⚠️ Could not load linkedin cookies: %v. Continuing as guest.", err)
	} else {
		log.Printf("🍪 Loaded linkedin cookies (%d)", len(cookies))
	}

	pm, err := browser.NewPlaywright(browser.Options{
		Headless:          *cfg.Headless,
		UserAgent:         cfg.UserAgent,
		Cookies:           cookies,
		NavigationTimeout: navTimeout,
		SelectorTimeout:   time.Duration(cfg.SelectorTimeoutMs) * time.Millisecond,
		HumanDelay:        cfg.HumanDelay,
	})
	if err != nil {
		return nil, nil, err
	}
	log.Println("✅ Browser initialized successfully!")

	var onFailure func(crawler.Page, crawler.Request, error)
	if cfg.Screenshots {
		onFailure = browser.NewScreenShotDebugger("").OnFailure
	}
	return pm, onFailure, nil
}
