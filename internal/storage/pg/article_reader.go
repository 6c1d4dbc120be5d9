package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsninja/newsninja/internal/apperr"
	"github.com/newsninja/newsninja/internal/domain"
)

const articleColumns = `
    id, title, summary, content, country_code, country_name,
    language, trend_keyword, trend_rank, search_queries, sources,
    views, status, published_at`

type ArticleReader struct {
	db *pgxpool.Pool
}

func NewArticleReader(pool *ConnectionPool) *ArticleReader {
	return &ArticleReader{db: pool.conn}
}

func (r *ArticleReader) GetRecent(ctx context.Context, limit int, countryCode string) ([]domain.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        WHERE status = 'published'`

	args := []any{}
	if countryCode != "" {
		query += ` AND country_code = $1`
		args = append(args, countryCode)
	}
	query += fmt.Sprintf(` ORDER BY published_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return articles, nil
}

func (r *ArticleReader) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	query := `
        SELECT ` + articleColumns + `
        FROM articles
        WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	article, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NewNotFound("article")
		}
		return nil, err
	}

	return &article, nil
}

func (r *ArticleReader) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	cmd := `
        UPDATE articles
        SET views = views + 1
        WHERE id = $1
        RETURNING views`

	var views int
	if err := r.db.QueryRow(ctx, cmd, id).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperr.NewNotFound("article")
		}
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}

	return views, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Summary,
		&a.Content,
		&a.CountryCode,
		&a.CountryName,
		&a.Language,
		&a.TrendKeyword,
		&a.TrendRank,
		&a.SearchQueries,
		&a.Sources,
		&a.Views,
		&a.Status,
		&a.PublishedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, err
		}
		return domain.Article{}, fmt.Errorf("failed to scan article: %w", err)
	}
	return a, nil
}
