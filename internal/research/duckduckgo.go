package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/newsninja/newsninja/internal/domain"
)

const (
	duckDuckGoBaseURL = "https://html.duckduckgo.com/html/"
	scrapeUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// Snippets shorter than this are navigation fragments, not content.
	minSnippetLength = 20
)

// DuckDuckGoProvider scrapes the keyless DuckDuckGo HTML endpoint. Brittle
// by nature: selector drift upstream degrades to zero snippets, which the
// chain treats as a miss rather than a failure.
type DuckDuckGoProvider struct {
	base string
	http *http.Client
}

type DuckDuckGoOption func(*DuckDuckGoProvider)

func WithDuckDuckGoBaseURL(base string) DuckDuckGoOption {
	return func(p *DuckDuckGoProvider) {
		p.base = base
	}
}

func NewDuckDuckGoProvider(opts ...DuckDuckGoOption) *DuckDuckGoProvider {
	p := &DuckDuckGoProvider{
		base: duckDuckGoBaseURL,
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *DuckDuckGoProvider) Name() string { return "duckduckgo" }

func (p *DuckDuckGoProvider) Search(ctx context.Context, query, language string) ([]domain.Snippet, error) {
	params := url.Values{}
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", scrapeUserAgent)

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse HTML failed: %w", err)
	}

	snippets := make([]domain.Snippet, 0, domain.MaxSnippets)
	doc.Find("div.result").Each(func(i int, result *goquery.Selection) {
		if len(snippets) >= domain.MaxSnippets {
			return
		}

		body := strings.TrimSpace(result.Find("a.result__snippet").Text())
		if len(body) < minSnippetLength {
			return
		}

		title := strings.TrimSpace(result.Find("a.result__a").Text())
		if title == "" {
			title = fmt.Sprintf("Search Result %d", len(snippets)+1)
		}

		snippets = append(snippets, domain.Snippet{Title: title, Body: body})
	})

	return snippets, nil
}
