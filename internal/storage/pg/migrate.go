package pg

import (
	"context"
	"fmt"
)

// schemaStatements is the ordered DDL applied at startup. Statements are
// idempotent so repeated boots are safe without a version table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS articles (
        id UUID PRIMARY KEY,
        title TEXT NOT NULL,
        summary TEXT NOT NULL DEFAULT '',
        content TEXT NOT NULL,
        country_code VARCHAR(2) NOT NULL,
        country_name TEXT NOT NULL,
        language VARCHAR(8) NOT NULL DEFAULT 'en',
        trend_keyword TEXT NOT NULL,
        trend_rank INTEGER NOT NULL DEFAULT 0,
        search_queries TEXT[] NOT NULL DEFAULT '{}',
        sources TEXT[] NOT NULL DEFAULT '{}',
        views INTEGER NOT NULL DEFAULT 0,
        status VARCHAR(16) NOT NULL DEFAULT 'published',
        published_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS trends (
        id BIGSERIAL PRIMARY KEY,
        country_code VARCHAR(2) NOT NULL,
        country_name TEXT NOT NULL,
        keyword TEXT NOT NULL,
        rank INTEGER NOT NULL,
        visitors DOUBLE PRECISION NOT NULL DEFAULT 0,
        growth_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
        analyzed_date DATE NOT NULL,
        UNIQUE (country_code, keyword, analyzed_date)
    )`,
	`CREATE TABLE IF NOT EXISTS article_views (
        id BIGSERIAL PRIMARY KEY,
        article_id UUID NOT NULL REFERENCES articles(id),
        viewer_country TEXT NOT NULL DEFAULT 'Unknown',
        viewer_country_code VARCHAR(2) NOT NULL DEFAULT 'XX',
        viewed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles (published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_country_code ON articles (country_code)`,
	`CREATE INDEX IF NOT EXISTS idx_articles_views ON articles (views DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_article_views_country ON article_views (viewer_country_code)`,
}

// EnsureSchema creates the tables and indexes the storers expect.
func EnsureSchema(ctx context.Context, pool *ConnectionPool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
