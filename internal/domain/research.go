package domain

import (
	"fmt"
	"strings"
)

// MaxSnippets caps how many search results are embedded into a prompt.
const MaxSnippets = 5

type Snippet struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ResearchContext holds the snippets gathered for one generation attempt.
// It is never persisted; only Text() reaches the model.
type ResearchContext struct {
	Topic      string    `json:"topic"`
	Language   string    `json:"language"`
	Snippets   []Snippet `json:"snippets"`
	IsFallback bool      `json:"isFallback"`
}

// Text renders the snippets as numbered source blocks, at most MaxSnippets.
func (rc ResearchContext) Text() string {
	snippets := rc.Snippets
	if len(snippets) > MaxSnippets {
		snippets = snippets[:MaxSnippets]
	}

	blocks := make([]string, 0, len(snippets))
	for i, s := range snippets {
		blocks = append(blocks, fmt.Sprintf("[Source %d] %s\n%s", i+1, s.Title, s.Body))
	}
	return strings.Join(blocks, "\n\n")
}

// FallbackContext builds the deterministic single-snippet context used when
// every search backend fails, so generation always receives grounding text.
func FallbackContext(topic, language string) ResearchContext {
	return ResearchContext{
		Topic:      topic,
		Language:   language,
		IsFallback: true,
		Snippets: []Snippet{{
			Title: "General knowledge",
			Body: fmt.Sprintf(
				"General information about %s. This is a trending topic with growing interest globally. "+
					"Recent developments show increased attention from industry experts and the general public.",
				topic),
		}},
	}
}
