package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/storage"
)

type TrendStorer struct {
	db *pgxpool.Pool
}

func NewTrendStorer(pool *ConnectionPool) *TrendStorer {
	return &TrendStorer{db: pool.conn}
}

// SaveSnapshot upserts one row per topic, keyed on country, keyword and
// day. Rank, popularity and growth from the latest run win.
func (s *TrendStorer) SaveSnapshot(ctx context.Context, countryCode, countryName string, topics []domain.Topic, date time.Time) error {
	cmd := `
        INSERT INTO trends (
            country_code, country_name, keyword, rank,
            visitors, growth_rate, analyzed_date
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (country_code, keyword, analyzed_date)
        DO UPDATE SET
            rank = EXCLUDED.rank,
            visitors = EXCLUDED.visitors,
            growth_rate = EXCLUDED.growth_rate`

	day := date.Format("2006-01-02")
	for _, topic := range topics {
		_, err := s.db.Exec(
			ctx,
			cmd,
			countryCode,
			countryName,
			topic.Keyword,
			topic.Rank,
			topic.Popularity,
			topic.GrowthRate,
			day,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert trend %q for %s: %w", topic.Keyword, countryCode, err)
		}
	}

	return nil
}

type TrendReader struct {
	db *pgxpool.Pool
}

func NewTrendReader(pool *ConnectionPool) *TrendReader {
	return &TrendReader{db: pool.conn}
}

func (r *TrendReader) CountryStats(ctx context.Context) ([]storage.CountryStats, error) {
	query := `
        SELECT
            country_name,
            country_code,
            COUNT(*) AS article_count,
            COALESCE(SUM(views), 0) AS total_views
        FROM articles
        WHERE status = 'published'
        GROUP BY country_code, country_name
        ORDER BY article_count DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query country stats: %w", err)
	}
	defer rows.Close()

	var stats []storage.CountryStats
	for rows.Next() {
		var cs storage.CountryStats
		if err := rows.Scan(&cs.CountryName, &cs.CountryCode, &cs.ArticleCount, &cs.TotalViews); err != nil {
			return nil, fmt.Errorf("failed to scan country stats: %w", err)
		}
		stats = append(stats, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read country stats rows: %w", err)
	}

	return stats, nil
}

func (r *TrendReader) CountryKeywords(ctx context.Context, countryCode string, limit int) ([]storage.CountryKeyword, error) {
	// Article coverage stands in for raw visitor counts here: the number
	// of published articles per keyword approximates its reach.
	query := `
        SELECT
            trend_keyword AS keyword,
            COUNT(*) AS visitors,
            50.0 AS growth_rate
        FROM articles
        WHERE country_code = $1
          AND status = 'published'
        GROUP BY trend_keyword
        ORDER BY visitors DESC
        LIMIT $2`

	rows, err := r.db.Query(ctx, query, countryCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query country keywords: %w", err)
	}
	defer rows.Close()

	var keywords []storage.CountryKeyword
	for rows.Next() {
		var kw storage.CountryKeyword
		if err := rows.Scan(&kw.Keyword, &kw.Visitors, &kw.GrowthRate); err != nil {
			return nil, fmt.Errorf("failed to scan country keyword: %w", err)
		}
		keywords = append(keywords, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read country keyword rows: %w", err)
	}

	return keywords, nil
}
