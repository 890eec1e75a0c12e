package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"

	"github.com/storywire/storywire/internal/models"
)

const (
	fetchTimeout = 30 * time.Second

	// Articles shorter than this are link posts, stubs or paywalled
	// teasers and carry too little text to classify.
	minArticleWords = 120

	summaryMaxBytes = 400
)

// Fetcher downloads a URL and produces a normalized candidate.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*models.ArticleCandidate, error)
}

// ReadabilityFetcher extracts the main article content from a page.
type ReadabilityFetcher struct {
	timeout time.Duration
}

func NewFetcher() *ReadabilityFetcher {
	return &ReadabilityFetcher{timeout: fetchTimeout}
}

// Fetch downloads and extracts the article at url. Pages without enough
// readable text are rejected.
func (f *ReadabilityFetcher) Fetch(ctx context.Context, url string) (*models.ArticleCandidate, error) {
	extracted, err := readability.FromURL(url, f.timeout)
	if err != nil {
		return nil, fmt.Errorf("content extraction failed for %s: %w", url, err)
	}

	title := CleanHTML(extracted.Title)
	text := CleanHTML(extracted.TextContent)
	if title == "" {
		return nil, fmt.Errorf("no title extracted from %s", url)
	}
	if len(strings.Fields(text)) < minArticleWords {
		return nil, fmt.Errorf("article at %s too short to use", url)
	}

	summary := CleanHTML(extracted.Excerpt)
	if summary == "" {
		summary = truncate(text, summaryMaxBytes)
	}

	var published *time.Time
	if extracted.PublishedTime != nil {
		utc := extracted.PublishedTime.UTC()
		published = &utc
	}

	return &models.ArticleCandidate{
		Title:     title,
		URL:       url,
		Summary:   summary,
		Text:      text,
		ImageURL:  strings.TrimSpace(extracted.Image),
		Published: published,
	}, nil
}
