package generator

import (
	"regexp"
	"strings"
)

// Fallback values substituted when the model ignores the output template.
// A parsed article never carries an empty title or body.
const (
	DefaultTitle = "Untitled Article"
)

var (
	headlinePattern = regexp.MustCompile(`(?i)HEADLINE:[ \t]*(.+)`)
	summaryPattern  = regexp.MustCompile(`(?is)SUMMARY:\s*(.+?)(?:\n\s*\n|CONTENT:)`)
	contentPattern  = regexp.MustCompile(`(?is)CONTENT:\s*(.+)$`)
)

// ParsedArticle is the record extracted from one model response.
type ParsedArticle struct {
	Title   string
	Summary string
	Content string
}

// ParseArticle matches the HEADLINE/SUMMARY/CONTENT template against raw
// model output, tolerating case and whitespace drift. Each field defaults
// independently: missing headline becomes DefaultTitle, missing summary the
// empty string, and a missing content section keeps the entire raw text so
// nothing the model wrote is lost.
func ParseArticle(text string) ParsedArticle {
	parsed := ParsedArticle{
		Title:   DefaultTitle,
		Content: strings.TrimSpace(text),
	}

	if m := headlinePattern.FindStringSubmatch(text); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			parsed.Title = title
		}
	}
	if m := summaryPattern.FindStringSubmatch(text); m != nil {
		parsed.Summary = strings.TrimSpace(m[1])
	}
	if m := contentPattern.FindStringSubmatch(text); m != nil {
		if content := strings.TrimSpace(m[1]); content != "" {
			parsed.Content = content
		}
	}

	return parsed
}
