// Load envs from .env
// Load YAML config
// Override from env, fill defaults, validate

package config

import (
	"fmt"
	"linkedin-scraper/internal/crawler"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EngineBrowser = "browser"
	EngineHTTP    = "http"

	DefaultConfigPath = "configs/config.yaml"
)

type Config struct {
	//Search input, overridden by CLI arguments
	Title      string `yaml:"title"`
	Location   string `yaml:"location"`
	OutputName string `yaml:"output_name"`

	SearchBaseURL string `yaml:"search_base_url"`

	//Engine
	Engine              string `yaml:"engine"`
	Headless            *bool  `yaml:"headless"`
	UserAgent           string `yaml:"user_agent"`
	NavigationTimeoutMs int    `yaml:"navigation_timeout_ms"`
	SelectorTimeoutMs   int    `yaml:"selector_timeout_ms"`
	HumanDelay          bool   `yaml:"human_delay"`
	Screenshots         bool   `yaml:"screenshots"`

	//Crawler
	MaxConcurrency        int     `yaml:"max_concurrency"`
	MaxRetries            *int    `yaml:"max_retries"`
	RequestsPerSecond     float64 `yaml:"requests_per_second"`
	Burst                 int     `yaml:"burst"`
	RequestTimeoutSeconds int     `yaml:"request_timeout_seconds"`
	RunTimeoutMinutes     int     `yaml:"run_timeout_minutes"`
	DedupURLs             bool    `yaml:"dedup_urls"`

	//Paths
	SeenCache   bool   `yaml:"seen_cache"`
	CachePath   string `yaml:"cache_path"`
	CookiesPath string `yaml:"cookies_path"`
	JSONLogDir  string `yaml:"json_log_dir"`

	//Optional sinks
	TelegramToken    string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	TelegramSendJobs bool   `yaml:"telegram_send_jobs"`
	DatabaseURL      string `yaml:"database_url" env:"DATABASE_URL"`
}

// Load reads .env, then the YAML file at SCRAPER_CONFIG (default configs/config.yaml).
// A missing YAML file is only a warning.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("SCRAPER_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	if engine := os.Getenv("SCRAPER_ENGINE"); engine != "" {
		cfg.Engine = engine
	}

	if headless := os.Getenv("SCRAPER_HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return fmt.Errorf("invalid SCRAPER_HEADLESS: %w", err)
		}
		cfg.Headless = &v
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Engine == "" {
		cfg.Engine = EngineBrowser
	}
	if cfg.Headless == nil {
		headless := true
		cfg.Headless = &headless
	}
	if cfg.NavigationTimeoutMs == 0 {
		cfg.NavigationTimeoutMs = 30000
	}
	if cfg.SelectorTimeoutMs == 0 {
		cfg.SelectorTimeoutMs = 10000
	}
	if cfg.MaxConcurrency == 0 {
		cfg.MaxConcurrency = crawler.DefaultOptions.MaxConcurrency
	}
	if cfg.MaxRetries == nil {
		retries := crawler.DefaultOptions.MaxRetries
		cfg.MaxRetries = &retries
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = crawler.DefaultOptions.RequestsPerSecond
	}
	if cfg.Burst == 0 {
		cfg.Burst = crawler.DefaultOptions.Burst
	}
	if cfg.RequestTimeoutSeconds == 0 {
		cfg.RequestTimeoutSeconds = int(crawler.DefaultOptions.RequestTimeout / time.Second)
	}
	if cfg.RunTimeoutMinutes == 0 {
		cfg.RunTimeoutMinutes = 10
	}
	if cfg.OutputName == "" {
		cfg.OutputName = "jobs"
	}
	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}
	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
}

func (cfg *Config) Validate() error {
	switch cfg.Engine {
	case EngineBrowser, EngineHTTP:
	default:
		return fmt.Errorf("unknown engine %q (want %q or %q)", cfg.Engine, EngineBrowser, EngineHTTP)
	}
	if cfg.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be positive, got %d", cfg.MaxConcurrency)
	}
	if cfg.MaxRetries != nil && *cfg.MaxRetries < 0 {
		return fmt.Errorf("max_retries must not be negative, got %d", *cfg.MaxRetries)
	}
	if cfg.RequestsPerSecond < 0 {
		return fmt.Errorf("requests_per_second must not be negative")
	}
	if (cfg.TelegramToken == "") != (cfg.TelegramChatID == 0) {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
	}
	return nil
}

// CrawlerOptions maps the crawler section onto crawler.Options.
func (cfg *Config) CrawlerOptions() crawler.Options {
	opts := crawler.Options{
		MaxConcurrency:    cfg.MaxConcurrency,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
		RequestTimeout:    time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		Dedup:             cfg.DedupURLs,
	}
	if cfg.MaxRetries != nil {
		opts.MaxRetries = *cfg.MaxRetries
	}
	return opts
}

func (cfg *Config) RunTimeout() time.Duration {
	return time.Duration(cfg.RunTimeoutMinutes) * time.Minute
}

func (cfg *Config) TelegramEnabled() bool {
	return cfg.TelegramToken != "" && cfg.TelegramChatID != 0
}
