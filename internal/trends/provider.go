// Package trends resolves the ranked topics the pipeline writes articles
// about. Real providers are tried in configured order; when none yields a
// usable result the source falls back to synthesized topics, so callers
// always receive exactly the number of topics they asked for.
package trends

import (
	"context"
	"log/slog"

	"github.com/newsninja/newsninja/internal/domain"
)

// Provider fetches trending topics for one country from an upstream service.
// A nil error with zero topics means the provider had nothing usable and the
// next provider in the chain should be tried.
type Provider interface {
	Name() string
	TryFetch(ctx context.Context, countryCode string, count int) ([]domain.Topic, error)
}

type Source struct {
	providers []Provider
	mock      *MockProvider
}

type SourceOption func(*Source)

func WithProviders(providers ...Provider) SourceOption {
	return func(s *Source) {
		s.providers = providers
	}
}

func NewSource(opts ...SourceOption) *Source {
	s := &Source{
		mock: NewMockProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetTrends returns exactly count topics for a country, ranks 1..count.
// It never fails: provider errors and empty results degrade to mock topics.
func (s *Source) GetTrends(ctx context.Context, countryCode string, count int) []domain.Topic {
	for _, p := range s.providers {
		topics, err := p.TryFetch(ctx, countryCode, count)
		if err != nil {
			slog.Warn("Trend provider failed", "provider", p.Name(), "country", countryCode, "error", err)
			continue
		}
		if len(topics) == 0 {
			slog.Debug("Trend provider returned no topics", "provider", p.Name(), "country", countryCode)
			continue
		}

		topics = rerank(topics, count)
		slog.Info("Fetched trends", "provider", p.Name(), "country", countryCode, "count", len(topics))
		if len(topics) == count {
			return topics
		}
		// Short batches are topped up with mock topics to keep the
		// exactly-count contract.
		topics = append(topics, s.mock.Synthesize(countryCode, count-len(topics))...)
		return rerank(topics, count)
	}

	slog.Info("Using mock trends", "country", countryCode, "count", count)
	return s.mock.Synthesize(countryCode, count)
}

// rerank trims to count and reassigns 1-based ranks in slice order.
func rerank(topics []domain.Topic, count int) []domain.Topic {
	if len(topics) > count {
		topics = topics[:count]
	}
	for i := range topics {
		topics[i].Rank = i + 1
	}
	return topics
}
