// Package research gathers short web-search snippets used as grounding
// context for article generation. Backends are tried in configured order;
// every attempt is timeout-bound and error-swallowed, and a deterministic
// fallback context is returned when no backend yields a usable snippet.
package research

import (
	"context"
	"log/slog"
	"time"

	"github.com/newsninja/newsninja/internal/domain"
)

const attemptTimeout = 10 * time.Second

// SearchProvider is one web-search backend. Implementations return the raw
// snippets for a query; ordering, capping and fallback live in Source.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, query, language string) ([]domain.Snippet, error)
}

type Source struct {
	providers []SearchProvider
	timeout   time.Duration
}

type SourceOption func(*Source)

func WithProviders(providers ...SearchProvider) SourceOption {
	return func(s *Source) {
		s.providers = providers
	}
}

func WithAttemptTimeout(d time.Duration) SourceOption {
	return func(s *Source) {
		s.timeout = d
	}
}

func NewSource(opts ...SourceOption) *Source {
	s := &Source{timeout: attemptTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns a research context for the query. It never fails: backend
// errors degrade to the next backend, and when all are exhausted the
// returned context carries IsFallback=true with templated snippet text.
func (s *Source) Search(ctx context.Context, query, language string) domain.ResearchContext {
	for _, p := range s.providers {
		snippets, err := s.attempt(ctx, p, query, language)
		if err != nil {
			slog.Warn("Search backend failed", "backend", p.Name(), "query", query, "error", err)
			continue
		}
		if len(snippets) == 0 {
			slog.Debug("Search backend returned no snippets", "backend", p.Name(), "query", query)
			continue
		}

		if len(snippets) > domain.MaxSnippets {
			snippets = snippets[:domain.MaxSnippets]
		}
		slog.Info("Search completed", "backend", p.Name(), "query", query, "snippets", len(snippets))
		return domain.ResearchContext{
			Topic:    query,
			Language: language,
			Snippets: snippets,
		}
	}

	slog.Warn("All search backends exhausted, using fallback context", "query", query)
	return domain.FallbackContext(query, language)
}

func (s *Source) attempt(ctx context.Context, p SearchProvider, query, language string) ([]domain.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return p.Search(ctx, query, language)
}
