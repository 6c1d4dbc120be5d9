package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/newsninja/newsninja/internal/domain"
)

// SerpMonthlyQuota is the free-tier call allowance per month.
const SerpMonthlyQuota = 100

const (
	serpBaseURL        = "https://serpapi.com/search"
	serpTimeout        = 15 * time.Second
	defaultSearchCount = 10000
)

// SerpAPIProvider fetches real daily trending searches from the SerpAPI
// Google Trends engine. The free tier allows 100 calls per month, tracked on
// the provider so each run can report how many calls are left.
type SerpAPIProvider struct {
	apiKey string
	base   string
	http   *http.Client

	quota int
}

type SerpAPIOption func(*SerpAPIProvider)

func WithSerpBaseURL(base string) SerpAPIOption {
	return func(p *SerpAPIProvider) {
		p.base = base
	}
}

func WithSerpHTTPClient(client *http.Client) SerpAPIOption {
	return func(p *SerpAPIProvider) {
		p.http = client
	}
}

func NewSerpAPIProvider(apiKey string, opts ...SerpAPIOption) *SerpAPIProvider {
	p := &SerpAPIProvider{
		apiKey: apiKey,
		base:   serpBaseURL,
		http:   &http.Client{Timeout: serpTimeout},
		quota:  SerpMonthlyQuota,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewSerpAPIProviderFromEnv returns nil when SERPAPI_KEY is not set, which
// callers treat as "provider unavailable" rather than an error.
func NewSerpAPIProviderFromEnv() *SerpAPIProvider {
	key := os.Getenv("SERPAPI_KEY")
	if key == "" {
		return nil
	}
	return NewSerpAPIProvider(key)
}

func (p *SerpAPIProvider) Name() string { return "serpapi" }

// Quota reports the remaining monthly call allowance.
func (p *SerpAPIProvider) Quota() int { return p.quota }

type serpTrendingSearch struct {
	Query    string          `json:"query"`
	Searches json.RawMessage `json:"searches"`
}

type serpTrendingResponse struct {
	DailySearches []serpTrendingSearch `json:"daily_searches"`
}

func (p *SerpAPIProvider) TryFetch(ctx context.Context, countryCode string, count int) ([]domain.Topic, error) {
	if p.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("engine", "google_trends_trending_now")
	params.Set("frequency", "daily")
	params.Set("geo", countryCode)
	params.Set("api_key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.base+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	p.quota--
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

	var trending serpTrendingResponse
	if err := json.Unmarshal(body, &trending); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	topics := make([]domain.Topic, 0, count)
	for i, item := range trending.DailySearches {
		if len(topics) >= count {
			break
		}
		if item.Query == "" {
			continue
		}
		topics = append(topics, domain.Topic{
			Keyword:    item.Query,
			Country:    countryCode,
			Rank:       i + 1,
			Popularity: float64(parseSearchCount(item.Searches)),
			GrowthRate: 50 + float64(i%50),
			IsReal:     true,
		})
	}

	slog.Debug("SerpAPI call completed", "country", countryCode, "topics", len(topics), "quota_left", p.quota)
	return topics, nil
}

// parseSearchCount tolerates both numeric and formatted-string search counts
// ("2,000,000") since SerpAPI returns either depending on the engine.
func parseSearchCount(raw json.RawMessage) int {
	if len(raw) == 0 {
		return defaultSearchCount
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, s)
		if v, err := strconv.Atoi(digits); err == nil && v > 0 {
			return v
		}
	}

	return defaultSearchCount
}
