package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/newsninja/newsninja/internal/domain"
)

const googleCSEBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleCSEProvider queries the Google Custom Search JSON API. Requires an
// API key plus a custom search engine id.
type GoogleCSEProvider struct {
	apiKey   string
	engineID string
	base     string
	http     *http.Client
}

type GoogleCSEOption func(*GoogleCSEProvider)

func WithGoogleBaseURL(base string) GoogleCSEOption {
	return func(p *GoogleCSEProvider) {
		p.base = base
	}
}

func WithGoogleHTTPClient(client *http.Client) GoogleCSEOption {
	return func(p *GoogleCSEProvider) {
		p.http = client
	}
}

func NewGoogleCSEProvider(apiKey, engineID string, opts ...GoogleCSEOption) *GoogleCSEProvider {
	p := &GoogleCSEProvider{
		apiKey:   apiKey,
		engineID: engineID,
		base:     googleCSEBaseURL,
		http:     &http.Client{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewGoogleCSEProviderFromEnv returns nil unless both GOOGLE_API_KEY and
// GOOGLE_SEARCH_ENGINE_ID are set.
func NewGoogleCSEProviderFromEnv() *GoogleCSEProvider {
	key := os.Getenv("GOOGLE_API_KEY")
	cx := os.Getenv("GOOGLE_SEARCH_ENGINE_ID")
	if key == "" || cx == "" {
		return nil
	}
	return NewGoogleCSEProvider(key, cx)
}

func (p *GoogleCSEProvider) Name() string { return "google" }

type googleSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

func (p *GoogleCSEProvider) Search(ctx context.Context, query, language string) ([]domain.Snippet, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.engineID)
	params.Set("q", query)
	params.Set("num", fmt.Sprintf("%d", domain.MaxSnippets))
	params.Set("lr", "lang_"+language)
	// Recent results only; article grounding goes stale fast.
	params.Set("dateRestrict", "w2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed googleSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	snippets := make([]domain.Snippet, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Snippet == "" {
			continue
		}
		snippets = append(snippets, domain.Snippet{Title: item.Title, Body: item.Snippet})
	}
	return snippets, nil
}
