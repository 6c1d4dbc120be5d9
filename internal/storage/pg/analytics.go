package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/storage"
)

type ViewTracker struct {
	db *pgxpool.Pool
}

func NewViewTracker(pool *ConnectionPool) *ViewTracker {
	return &ViewTracker{db: pool.conn}
}

// Track appends the view event and bumps the article's counter. The two
// writes are independent; a lost event row never blocks the counter.
func (t *ViewTracker) Track(ctx context.Context, event domain.ViewEvent) (int, error) {
	if event.ViewedAt.IsZero() {
		event.ViewedAt = time.Now()
	}

	insert := `
        INSERT INTO article_views (article_id, viewer_country, viewer_country_code, viewed_at)
        VALUES ($1, $2, $3, $4)`

	_, err := t.db.Exec(ctx, insert, event.ArticleID, event.ViewerCountry, event.ViewerCountryCode, event.ViewedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to record view event: %w", err)
	}

	update := `
        UPDATE articles
        SET views = views + 1
        WHERE id = $1
        RETURNING views`

	var views int
	if err := t.db.QueryRow(ctx, update, event.ArticleID).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperr.NewNotFound("article")
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}

	return views, nil
}

type AnalyticsReader struct {
	db *pgxpool.Pool
}

func NewAnalyticsReader(pool *ConnectionPool) *AnalyticsReader {
	return &AnalyticsReader{db: pool.conn}
}

func (r *AnalyticsReader) TopArticles(ctx context.Context, limit int) ([]storage.TopArticle, error) {
	query := `
        SELECT id, title, country_name, country_code, views, trend_keyword
        FROM articles
        WHERE status = 'published'
        ORDER BY views DESC
        LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top articles: %w", err)
	}
	defer rows.Close()

	var articles []storage.TopArticle
	for rows.Next() {
		var ta storage.TopArticle
		if err := rows.Scan(&ta.ID, &ta.Title, &ta.CountryName, &ta.CountryCode, &ta.Views, &ta.TrendKeyword); err != nil {
			return nil, fmt.Errorf("failed to scan top article: %w", err)
		}
		articles = append(articles, ta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top article rows: %w", err)
	}

	return articles, nil
}

func (r *AnalyticsReader) ViewsByCountry(ctx context.Context, limit int) ([]storage.ViewerCountryViews, error) {
	// 'XX' marks views whose origin could not be resolved; they carry no
	// geographic signal and are left out.
	query := `
        SELECT
            viewer_country_code,
            viewer_country,
            COUNT(*) AS view_count
        FROM article_views
        WHERE viewer_country_code != 'XX'
        GROUP BY viewer_country_code, viewer_country
        ORDER BY view_count DESC
        LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query views by country: %w", err)
	}
	defer rows.Close()

	var views []storage.ViewerCountryViews
	for rows.Next() {
		var vc storage.ViewerCountryViews
		if err := rows.Scan(&vc.CountryCode, &vc.CountryName, &vc.ViewCount); err != nil {
			return nil, fmt.Errorf("failed to scan country views: %w", err)
		}
		views = append(views, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read country view rows: %w", err)
	}

	return views, nil
}
