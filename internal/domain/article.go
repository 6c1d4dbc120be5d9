package domain

import (
	"time"

	"github.com/google/uuid"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

type Article struct {
	ID            uuid.UUID     `json:"id"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary,omitempty"`
	Content       string        `json:"content"`
	CountryCode   string        `json:"countryCode"`
	CountryName   string        `json:"countryName"`
	Language      string        `json:"language"`
	TrendKeyword  string        `json:"trendKeyword"`
	TrendRank     int           `json:"trendRank"`
	SearchQueries []string      `json:"searchQueries,omitempty"`
	Sources       []string      `json:"sources,omitempty"`
	Views         int           `json:"views"`
	Status        ArticleStatus `json:"status"`
	PublishedAt   time.Time     `json:"publishedAt"`
}

// ViewEvent is one recorded article view with the viewer's geolocation.
// Events are append-only and feed the analytics aggregates.
type ViewEvent struct {
	ArticleID         uuid.UUID `json:"articleId"`
	ViewerCountry     string    `json:"viewerCountry"`
	ViewerCountryCode string    `json:"viewerCountryCode"`
	ViewedAt          time.Time `json:"viewedAt"`
}
