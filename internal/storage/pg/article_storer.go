package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/newsninja/newsninja/internal/domain"
)

type ArticleStorer struct {
	db *pgxpool.Pool
}

func NewArticleStorer(pool *ConnectionPool) *ArticleStorer {
	return &ArticleStorer{db: pool.conn}
}

func (s *ArticleStorer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.Language == "" {
		article.Language = domain.DefaultLanguage
	}
	if article.Status == "" {
		article.Status = domain.StatusPublished
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}

	cmd := `
        INSERT INTO articles (
            id, title, summary, content, country_code, country_name,
            language, trend_keyword, trend_rank, search_queries, sources,
            views, status, published_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Summary,
		article.Content,
		article.CountryCode,
		article.CountryName,
		article.Language,
		article.TrendKeyword,
		article.TrendRank,
		article.SearchQueries,
		article.Sources,
		article.Views,
		article.Status,
		article.PublishedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}
