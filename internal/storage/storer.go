package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newsninja/newsninja/internal/domain"
)

type ArticleStorer interface {
	Save(ctx context.Context, article domain.Article) (uuid.UUID, error)
}

type ArticleReader interface {
	// GetRecent returns published articles ordered by publish date,
	// optionally filtered by origin country code. countryCode "" means all.
	GetRecent(ctx context.Context, limit int, countryCode string) ([]domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// IncrementViews bumps the article's view counter and returns the new value.
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type TrendStorer interface {
	// SaveSnapshot upserts the day's trend list for a country. Re-running
	// an analysis on the same day overwrites rank and popularity in place.
	SaveSnapshot(ctx context.Context, countryCode, countryName string, topics []domain.Topic, date time.Time) error
}

type ViewTracker interface {
	// Track records a geolocated view event and returns the article's
	// updated total view count.
	Track(ctx context.Context, event domain.ViewEvent) (int, error)
}

// CountryStats aggregates published article coverage for a single country.
type CountryStats struct {
	CountryName  string `json:"countryName"`
	CountryCode  string `json:"countryCode"`
	ArticleCount int    `json:"articleCount"`
	TotalViews   int    `json:"totalViews"`
}

// CountryKeyword is one trending keyword derived from the articles
// published for a country.
type CountryKeyword struct {
	Keyword    string  `json:"keyword"`
	Visitors   int     `json:"visitors"`
	GrowthRate float64 `json:"growthRate"`
}

// TopArticle is a ranked row of the most viewed published articles.
type TopArticle struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	CountryName  string    `json:"countryName"`
	CountryCode  string    `json:"countryCode"`
	Views        int       `json:"views"`
	TrendKeyword string    `json:"trendKeyword"`
}

// ViewerCountryViews is the view count accumulated from one viewer country.
type ViewerCountryViews struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	ViewCount   int    `json:"viewCount"`
}

type TrendReader interface {
	// CountryStats lists every country with published articles, most
	// covered first.
	CountryStats(ctx context.Context) ([]CountryStats, error)
	// CountryKeywords lists the trending keywords behind a country's
	// published articles, most covered first.
	CountryKeywords(ctx context.Context, countryCode string, limit int) ([]CountryKeyword, error)
}

type AnalyticsReader interface {
	TopArticles(ctx context.Context, limit int) ([]TopArticle, error)
	// ViewsByCountry breaks down recorded views by viewer country,
	// excluding views with unknown geolocation.
	ViewsByCountry(ctx context.Context, limit int) ([]ViewerCountryViews, error)
}
