// Package generator turns a topic plus research context into an article via
// a remote inference endpoint, then parses the free-text response into a
// structured record.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/newsninja/newsninja/internal/domain"
)

const (
	defaultModel      = "mistral-nemo:latest"
	defaultMaxTokens  = 2500
	defaultOllamaURL  = "http://localhost:11434"
	ollamaURLEnvVar   = "OLLAMA_URL"
	ollamaModelEnvVar = "OLLAMA_MODEL"
)

// Client is the inference surface the generator needs; satisfied by
// OllamaClient and by stubs in tests.
type Client interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

type Generator struct {
	client    Client
	model     string
	maxTokens int
}

type Option func(*Generator)

func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

func New(client Client, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFromEnv builds a generator against OLLAMA_URL (default localhost).
func NewFromEnv(opts ...Option) (*Generator, error) {
	baseURL := os.Getenv(ollamaURLEnvVar)
	if baseURL == "" {
		baseURL = defaultOllamaURL
	}
	client, err := NewOllamaClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	if model := os.Getenv(ollamaModelEnvVar); model != "" {
		opts = append([]Option{WithModel(model)}, opts...)
	}
	return New(client, opts...), nil
}

// Generate produces one article for a topic. Upstream errors are returned to
// the caller; no retry happens at this level. The returned record always has
// a non-empty Title and Content.
func (g *Generator) Generate(ctx context.Context, topic domain.Topic, rctx domain.ResearchContext, language, countryName string) (ParsedArticle, error) {
	prompt := buildPrompt(topic, rctx, language, countryName)

	slog.Info("Generating article", "topic", topic.Keyword, "country", countryName, "language", language, "model", g.model)

	resp, err := g.client.Generate(ctx, GenerateRequest{
		Model:  g.model,
		Prompt: prompt,
		Options: map[string]any{
			"temperature": 0.7,
			"top_p":       0.9,
			"num_predict": g.maxTokens,
		},
	})
	if err != nil {
		return ParsedArticle{}, fmt.Errorf("generate article for %q: %w", topic.Keyword, err)
	}
	if strings.TrimSpace(resp.Response) == "" {
		return ParsedArticle{}, fmt.Errorf("generate article for %q: empty model response", topic.Keyword)
	}

	parsed := ParseArticle(resp.Response)
	slog.Debug("Parsed article", "topic", topic.Keyword, "title", parsed.Title, "content_length", len(parsed.Content))
	return parsed, nil
}

func buildPrompt(topic domain.Topic, rctx domain.ResearchContext, language, countryName string) string {
	languageName := domain.LanguageName(language)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional journalist writing for readers in %s.\n\n", countryName)
	fmt.Fprintf(&b, "TOPIC: %s\n", topic.Keyword)
	fmt.Fprintf(&b, "TREND DATA: This topic is trending with %.0f recent visitors and growing at %.0f%%\n\n",
		topic.Popularity, topic.GrowthRate)
	fmt.Fprintf(&b, "RESEARCH DATA FROM WEB:\n%s\n\n", rctx.Text())
	fmt.Fprintf(&b, "YOUR TASK: Write a comprehensive, engaging news article in %s with the following structure:\n\n", languageName)
	b.WriteString("1. HEADLINE: Create a catchy, informative headline (max 100 characters)\n")
	b.WriteString("2. SUMMARY: Write a compelling summary paragraph (2-3 sentences)\n")
	b.WriteString("3. MAIN CONTENT: Write 4-6 well-structured paragraphs (~600-800 words total)\n\n")
	b.WriteString("FORMAT YOUR RESPONSE EXACTLY LIKE THIS:\n")
	b.WriteString("HEADLINE: [Your headline here]\n\n")
	b.WriteString("SUMMARY: [Your 2-3 sentence summary here]\n\n")
	b.WriteString("CONTENT:\n[Your main article content here - 4-6 paragraphs]\n\n")
	b.WriteString("IMPORTANT:\n")
	fmt.Fprintf(&b, "- Write ENTIRELY in %s\n", languageName)
	b.WriteString("- Use information from the research data\n")
	b.WriteString("- Be factual and engaging\n")
	b.WriteString("- Use natural, fluent language\n")
	fmt.Fprintf(&b, "- Make it relevant for %s audience", countryName)

	return b.String()
}
