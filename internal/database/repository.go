package database

import (
	"context"
	"fmt"
	"linkedin-scraper/internal/scraper"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS linkedin_jobs (
	id              BIGSERIAL PRIMARY KEY,
	search_title    TEXT NOT NULL,
	search_location TEXT NOT NULL,
	title           TEXT NOT NULL,
	company_name    TEXT NOT NULL,
	posted_time     TEXT NOT NULL,
	url             TEXT NOT NULL,
	scraped_at      TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertJob = `
INSERT INTO linkedin_jobs (search_title, search_location, title, company_name, posted_time, url, scraped_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 4
	config.MinConns = 1
	config.MaxConnLifetime = time.Hour

	// PgBouncer in transaction mode does not support prepared statements
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create linkedin_jobs table: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// SaveJobs inserts every record in one batch. Rows are appended, never merged.
func (r *Repository) SaveJobs(ctx context.Context, q scraper.SearchQuery, records []scraper.JobRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(insertJob, q.Title, q.Location, rec.Title, rec.CompanyName, rec.PostedTime, rec.URL, now)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save jobs: %w", err)
	}
	return nil
}
