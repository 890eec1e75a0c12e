package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/models"
	"github.com/storywire/storywire/internal/sources"
)

type fakeLinks struct {
	bySource map[string][]string
}

func (f *fakeLinks) Fetch(ctx context.Context, src sources.Descriptor, maxEntries int) []string {
	links := f.bySource[src.Name]
	if len(links) > maxEntries {
		links = links[:maxEntries]
	}
	return links
}

type fakeArticles struct {
	byURL map[string]*models.ArticleCandidate
}

func (f *fakeArticles) Fetch(ctx context.Context, url string) (*models.ArticleCandidate, error) {
	c, ok := f.byURL[url]
	if !ok {
		return nil, fmt.Errorf("no article at %s", url)
	}
	copied := *c
	return &copied, nil
}

type fakeCoverage struct {
	covered map[string]models.CoverageRecord
}

func (f *fakeCoverage) Load() map[string]models.CoverageRecord {
	return f.covered
}

func testConfig() *config.Config {
	return &config.Config{
		AIOnlyMode:     true,
		MinAIKeywords:  1,
		AIKeywordBoost: 2.0,
		MinAIScore:     5.0,
		MinAIDensity:   0.3,
		MaxArticles:    10,
		MaxStories:     2,
		CacheTTL:       time.Hour,
	}
}

func aiArticle(url, title string, published time.Time) *models.ArticleCandidate {
	return &models.ArticleCandidate{
		Title:     title,
		URL:       url,
		Summary:   "The company released a new model that improves coding and reasoning, it said in the announcement.",
		Text:      "The update is rolling out to developers over the coming weeks through the existing api surface.",
		Published: &published,
	}
}

func TestRunSelectsTopStories(t *testing.T) {
	now := time.Now().UTC()
	registry := []sources.Descriptor{
		{Name: "Wire A", Kind: sources.KindRSS, Weight: 10, URL: "https://a.example.com/feed"},
		{Name: "Wire B", Kind: sources.KindRSS, Weight: 5, URL: "https://b.example.com/feed"},
	}

	links := &fakeLinks{bySource: map[string][]string{
		"Wire A": {"https://a.example.com/1", "https://a.example.com/2"},
		"Wire B": {"https://b.example.com/1"},
	}}
	articles := &fakeArticles{byURL: map[string]*models.ArticleCandidate{
		"https://a.example.com/1": aiArticle("https://a.example.com/1", "OpenAI launches GPT-5 today", now.Add(-2*time.Hour)),
		"https://a.example.com/2": aiArticle("https://a.example.com/2", "Anthropic ships a Claude update", now.Add(-30*time.Hour)),
		"https://b.example.com/1": aiArticle("https://b.example.com/1", "Gemini gains a new multimodal feature", now.Add(-5*time.Hour)),
	}}

	orch := New(testConfig(), registry, links, articles, &fakeCoverage{}, nil)

	result, err := orch.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(result.Stories) != 2 {
		t.Fatalf("selected %d stories, want 2 (the configured cap)", len(result.Stories))
	}
	if result.Stories[0].Score < result.Stories[1].Score {
		t.Errorf("stories not ordered by score: %v then %v", result.Stories[0].Score, result.Stories[1].Score)
	}
	for _, story := range result.Stories {
		if story.ID == "" || story.URL == "" {
			t.Errorf("story missing id or url: %+v", story)
		}
	}

	if result.Stats.Checked != 3 {
		t.Errorf("stats.Checked = %d, want 3", result.Stats.Checked)
	}
	if result.Stats.SourcesSucceeded != 2 {
		t.Errorf("stats.SourcesSucceeded = %d, want 2", result.Stats.SourcesSucceeded)
	}
	if orch.State() != StateDone {
		t.Errorf("final state = %q, want %q", orch.State(), StateDone)
	}
}

func TestRunOptionsOverrideLimits(t *testing.T) {
	now := time.Now().UTC()
	registry := []sources.Descriptor{
		{Name: "Wire A", Kind: sources.KindRSS, Weight: 10, URL: "https://a.example.com/feed"},
	}

	links := &fakeLinks{bySource: map[string][]string{
		"Wire A": {"https://a.example.com/1", "https://a.example.com/2"},
	}}
	articles := &fakeArticles{byURL: map[string]*models.ArticleCandidate{
		"https://a.example.com/1": aiArticle("https://a.example.com/1", "OpenAI launches GPT-5 today", now.Add(-2*time.Hour)),
		"https://a.example.com/2": aiArticle("https://a.example.com/2", "Anthropic ships a Claude update", now.Add(-3*time.Hour)),
	}}

	orch := New(testConfig(), registry, links, articles, &fakeCoverage{}, nil)

	result, err := orch.Run(context.Background(), Options{MaxStories: 1})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Stories) != 1 {
		t.Errorf("selected %d stories with MaxStories override 1", len(result.Stories))
	}
}

func TestRunBudgetsByAcceptedCandidates(t *testing.T) {
	now := time.Now().UTC()
	registry := []sources.Descriptor{
		{Name: "Wire A", Kind: sources.KindRSS, Weight: 10, URL: "https://a.example.com/feed"},
		{Name: "Wire B", Kind: sources.KindRSS, Weight: 5, URL: "https://b.example.com/feed"},
	}

	links := &fakeLinks{bySource: map[string][]string{
		"Wire A": {"https://www.amazon.com/dp/1"},
		"Wire B": {"https://b.example.com/1"},
	}}
	articles := &fakeArticles{byURL: map[string]*models.ArticleCandidate{
		"https://www.amazon.com/dp/1": aiArticle("https://www.amazon.com/dp/1", "OpenAI launches GPT-5 today", now.Add(-2*time.Hour)),
		"https://b.example.com/1":     aiArticle("https://b.example.com/1", "Anthropic ships a Claude update", now.Add(-3*time.Hour)),
	}}

	orch := New(testConfig(), registry, links, articles, &fakeCoverage{}, nil)

	// The retail link is excluded; a budget of one accepted candidate must
	// still leave room to check the next link.
	result, err := orch.Run(context.Background(), Options{MaxArticles: 1})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(result.Stories) != 1 {
		t.Fatalf("selected %d stories, want 1", len(result.Stories))
	}
	if result.Stories[0].URL != "https://b.example.com/1" {
		t.Errorf("selected %q, want the non-retail story", result.Stories[0].URL)
	}
	if result.Stats.Checked != 2 {
		t.Errorf("stats.Checked = %d, want 2", result.Stats.Checked)
	}
	if result.Stats.Excluded != 1 {
		t.Errorf("stats.Excluded = %d, want 1", result.Stats.Excluded)
	}
}

func TestRunSkipsCoveredStories(t *testing.T) {
	now := time.Now().UTC()
	registry := []sources.Descriptor{
		{Name: "Wire A", Kind: sources.KindRSS, Weight: 10, URL: "https://a.example.com/feed"},
	}

	links := &fakeLinks{bySource: map[string][]string{
		"Wire A": {"https://a.example.com/covered", "https://a.example.com/fresh"},
	}}
	articles := &fakeArticles{byURL: map[string]*models.ArticleCandidate{
		"https://a.example.com/covered": aiArticle("https://a.example.com/covered", "OpenAI launches GPT-5 today", now.Add(-2*time.Hour)),
		"https://a.example.com/fresh":   aiArticle("https://a.example.com/fresh", "Anthropic ships a Claude update", now.Add(-3*time.Hour)),
	}}
	coverage := &fakeCoverage{covered: map[string]models.CoverageRecord{
		"https://a.example.com/covered": {Title: "already done"},
	}}

	orch := New(testConfig(), registry, links, articles, coverage, nil)

	result, err := orch.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for _, story := range result.Stories {
		if story.URL == "https://a.example.com/covered" {
			t.Error("covered story was selected again")
		}
	}
	if result.Stats.Deduplicated != 1 {
		t.Errorf("stats.Deduplicated = %d, want 1", result.Stats.Deduplicated)
	}
}

func TestRunWithNoLinksIsEmptyNotError(t *testing.T) {
	registry := []sources.Descriptor{
		{Name: "Dead Wire", Kind: sources.KindRSS, Weight: 10, URL: "https://dead.example.com/feed"},
	}

	orch := New(testConfig(), registry, &fakeLinks{}, &fakeArticles{}, &fakeCoverage{}, nil)

	result, err := orch.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Stories) != 0 {
		t.Errorf("got %d stories from no links", len(result.Stories))
	}
	if result.Stats.SourcesFailed != 1 {
		t.Errorf("stats.SourcesFailed = %d, want 1", result.Stats.SourcesFailed)
	}
	if orch.State() != StateDone {
		t.Errorf("final state = %q, want %q", orch.State(), StateDone)
	}
}

func TestRunFiltersOffTopicStories(t *testing.T) {
	now := time.Now().UTC()
	registry := []sources.Descriptor{
		{Name: "Wire A", Kind: sources.KindRSS, Weight: 10, URL: "https://a.example.com/feed"},
	}

	offTopic := &models.ArticleCandidate{
		Title:     "Stock indexes fell sharply on Tuesday",
		URL:       "https://a.example.com/finance",
		Summary:   "Investors pulled back from growth shares over fresh worries.",
		Text:      "Bond yields climbed as the selloff deepened through the afternoon.",
		Published: &now,
	}

	links := &fakeLinks{bySource: map[string][]string{
		"Wire A": {"https://a.example.com/finance"},
	}}
	articles := &fakeArticles{byURL: map[string]*models.ArticleCandidate{
		"https://a.example.com/finance": offTopic,
	}}

	orch := New(testConfig(), registry, links, articles, &fakeCoverage{}, nil)

	result, err := orch.Run(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Stories) != 0 {
		t.Errorf("off-topic story selected: %+v", result.Stories)
	}
	if result.Stats.NotAIRelevant != 1 {
		t.Errorf("stats.NotAIRelevant = %d, want 1", result.Stats.NotAIRelevant)
	}
}
