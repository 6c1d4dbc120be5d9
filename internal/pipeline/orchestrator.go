package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsninja/newsninja/internal/domain"
	"github.com/newsninja/newsninja/internal/generator"
	"github.com/newsninja/newsninja/internal/storage"
)

const (
	// Spacing between generations keeps a single local model from being
	// hammered with back-to-back prompts.
	defaultTopicDelay   = 2 * time.Second
	defaultCountryDelay = 3 * time.Second
)

type TrendSource interface {
	GetTrends(ctx context.Context, countryCode string, count int) []domain.Topic
}

type ResearchSource interface {
	Search(ctx context.Context, query, language string) domain.ResearchContext
}

type ArticleGenerator interface {
	Generate(ctx context.Context, topic domain.Topic, rctx domain.ResearchContext, language, countryName string) (generator.ParsedArticle, error)
}

// Orchestrator walks countries sequentially, turning each trending topic
// into a researched, generated and persisted article. One failing unit
// never aborts the run; failures are counted and logged.
type Orchestrator struct {
	trends   TrendSource
	research ResearchSource
	gen      ArticleGenerator
	articles storage.ArticleStorer

	// trendLog is optional; when set, each country's topic list is
	// snapshotted before generation starts.
	trendLog storage.TrendStorer

	topicDelay   time.Duration
	countryDelay time.Duration
}

type Option func(*Orchestrator)

func WithTrendStorer(ts storage.TrendStorer) Option {
	return func(o *Orchestrator) {
		o.trendLog = ts
	}
}

func WithDelays(topic, country time.Duration) Option {
	return func(o *Orchestrator) {
		o.topicDelay = topic
		o.countryDelay = country
	}
}

func NewOrchestrator(trends TrendSource, research ResearchSource, gen ArticleGenerator, articles storage.ArticleStorer, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		trends:       trends,
		research:     research,
		gen:          gen,
		articles:     articles,
		topicDelay:   defaultTopicDelay,
		countryDelay: defaultCountryDelay,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run processes the given countries in order, generating up to
// topicsPerCountry articles each. It returns early only when ctx is
// cancelled; the partial stats are still returned alongside the error.
func (o *Orchestrator) Run(ctx context.Context, countries []domain.Country, topicsPerCountry int) (*RunStats, error) {
	stats := newRunStats()
	defer stats.finish()

	slog.Info("starting pipeline run",
		"countries", len(countries),
		"topicsPerCountry", topicsPerCountry,
	)

	for ci, country := range countries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		o.runCountry(ctx, country, topicsPerCountry, stats)
		stats.CountriesProcessed++

		if ci < len(countries)-1 {
			if err := sleep(ctx, o.countryDelay); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

func (o *Orchestrator) runCountry(ctx context.Context, country domain.Country, topicsPerCountry int, stats *RunStats) {
	language := domain.LanguageForCountry(country.Code)

	slog.Info("analyzing country",
		"country", country.Name,
		"code", country.Code,
		"language", language,
	)

	topics := o.trends.GetTrends(ctx, country.Code, topicsPerCountry)
	for _, t := range topics {
		if t.IsReal {
			stats.RealTrends++
		} else {
			stats.MockTrends++
		}
	}

	if o.trendLog != nil {
		if err := o.trendLog.SaveSnapshot(ctx, country.Code, country.Name, topics, time.Now()); err != nil {
			slog.Warn("failed to save trend snapshot",
				"country", country.Code,
				"error", err,
			)
		}
	}

	for ti, topic := range topics {
		if ctx.Err() != nil {
			return
		}

		stats.TopicsAttempted++
		o.runTopic(ctx, country, language, topic, stats)

		if ti < len(topics)-1 {
			if err := sleep(ctx, o.topicDelay); err != nil {
				return
			}
		}
	}
}

func (o *Orchestrator) runTopic(ctx context.Context, country domain.Country, language string, topic domain.Topic, stats *RunStats) {
	slog.Info("processing topic",
		"keyword", topic.Keyword,
		"rank", topic.Rank,
		"country", country.Code,
	)

	rctx := o.research.Search(ctx, topic.Keyword, language)
	if rctx.IsFallback {
		stats.SearchesFailed++
	} else {
		stats.SearchesSucceeded++
	}

	parsed, err := o.gen.Generate(ctx, topic, rctx, language, country.Name)
	if err != nil {
		stats.ArticlesFailed++
		slog.Error("failed to generate article",
			"keyword", topic.Keyword,
			"country", country.Code,
			"error", err,
		)
		return
	}

	article := domain.Article{
		Title:         parsed.Title,
		Summary:       parsed.Summary,
		Content:       parsed.Content,
		CountryCode:   country.Code,
		CountryName:   country.Name,
		Language:      language,
		TrendKeyword:  topic.Keyword,
		TrendRank:     topic.Rank,
		SearchQueries: []string{topic.Keyword},
		Sources:       []string{"AI Generated", "Web Research"},
		Status:        domain.StatusPublished,
	}

	id, err := o.articles.Save(ctx, article)
	if err != nil {
		stats.ArticlesFailed++
		slog.Error("failed to save article",
			"keyword", topic.Keyword,
			"country", country.Code,
			"error", err,
		)
		return
	}

	stats.ArticlesSucceeded++
	slog.Info("article published",
		"id", id,
		"title", parsed.Title,
		"country", country.Code,
	)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
