package trends

import (
	"context"
	"math/rand/v2"

	"github.com/newsninja/newsninja/internal/domain"
)

// topicCatalog is the fixed pool mock trends are drawn from, spanning the
// categories the original catalog covers so consecutive runs stay varied.
var topicCatalog = []string{
	// tech
	"artificial intelligence", "machine learning trends", "quantum computing",
	"cybersecurity threats", "5G technology", "blockchain applications",
	"cloud computing trends", "edge computing", "IoT devices",
	"virtual reality applications", "robotics industry", "biotechnology breakthroughs",
	// news
	"world news today", "economy news", "inflation rates",
	"stock market trends", "climate change news", "international relations",
	"space exploration news",
	// business
	"startup funding", "cryptocurrency news", "real estate market",
	"remote work trends", "digital transformation", "sustainable business",
	"fintech innovation",
	// lifestyle
	"healthy recipes", "fitness trends", "mental health awareness",
	"work life balance", "sustainable living", "wellness trends",
	"online education",
	// entertainment
	"streaming shows", "music festivals", "gaming news",
	"esports tournaments", "social media trends",
	// sports
	"champions league", "formula 1", "tennis tournaments", "football news",
	// travel and food
	"travel destinations", "budget travel", "digital nomad",
	"vegan recipes", "meal prep ideas", "international cuisine",
}

// MockProvider synthesizes plausible topics without any network call.
type MockProvider struct {
	catalog []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{catalog: topicCatalog}
}

func (p *MockProvider) Name() string { return "mock" }

func (p *MockProvider) TryFetch(ctx context.Context, countryCode string, count int) ([]domain.Topic, error) {
	return p.Synthesize(countryCode, count), nil
}

// Synthesize shuffles the catalog and takes the first count entries, with
// popularity sampled in [500,1500) and growth rate in [20,100).
func (p *MockProvider) Synthesize(countryCode string, count int) []domain.Topic {
	if count <= 0 {
		return nil
	}
	if count > len(p.catalog) {
		count = len(p.catalog)
	}

	shuffled := make([]string, len(p.catalog))
	copy(shuffled, p.catalog)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	topics := make([]domain.Topic, count)
	for i := 0; i < count; i++ {
		topics[i] = domain.Topic{
			Keyword:    shuffled[i],
			Country:    countryCode,
			Rank:       i + 1,
			Popularity: 500 + rand.Float64()*1000,
			GrowthRate: 20 + rand.Float64()*80,
			IsReal:     false,
		}
	}
	return topics
}
