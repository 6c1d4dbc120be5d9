package research

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/newsninja/newsninja/internal/domain"
)

const googleNewsBaseURL = "https://news.google.com/rss/search"

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// GoogleNewsProvider searches the keyless Google News RSS feed. Items carry
// only headline-grade descriptions, so it sits last in the default chain.
type GoogleNewsProvider struct {
	base   string
	parser *gofeed.Parser
}

type GoogleNewsOption func(*GoogleNewsProvider)

func WithGoogleNewsBaseURL(base string) GoogleNewsOption {
	return func(p *GoogleNewsProvider) {
		p.base = base
	}
}

func NewGoogleNewsProvider(opts ...GoogleNewsOption) *GoogleNewsProvider {
	p := &GoogleNewsProvider{
		base:   googleNewsBaseURL,
		parser: gofeed.NewParser(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *GoogleNewsProvider) Name() string { return "google-news" }

func (p *GoogleNewsProvider) Search(ctx context.Context, query, language string) ([]domain.Snippet, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", language)

	feed, err := p.parser.ParseURLWithContext(p.base+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	snippets := make([]domain.Snippet, 0, domain.MaxSnippets)
	for _, item := range feed.Items {
		if len(snippets) >= domain.MaxSnippets {
			break
		}
		if item.Title == "" {
			continue
		}

		body := strings.TrimSpace(htmlTagPattern.ReplaceAllString(item.Description, ""))
		if body == "" {
			body = item.Title
		}
		snippets = append(snippets, domain.Snippet{Title: item.Title, Body: body})
	}

	return snippets, nil
}
