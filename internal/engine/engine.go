package engine

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/storywire/storywire/internal/article"
	"github.com/storywire/storywire/internal/cache"
	"github.com/storywire/storywire/internal/classify"
	"github.com/storywire/storywire/internal/config"
	"github.com/storywire/storywire/internal/feeds"
	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/models"
	"github.com/storywire/storywire/internal/sources"
	"github.com/storywire/storywire/internal/utils"
)

// State is the phase a selection run is currently in.
type State string

const (
	StateIdle          State = "idle"
	StateCollecting    State = "collecting"
	StateClassifying   State = "classifying"
	StateRanking       State = "ranking"
	StateDeduplicating State = "deduplicating"
	StateSelecting     State = "selecting"
	StateDone          State = "done"
)

// CoverageStore is the part of the ledger the engine needs: the set of
// already-covered story URLs.
type CoverageStore interface {
	Load() map[string]models.CoverageRecord
}

// Stats is the per-run telemetry attached to every result.
type Stats struct {
	SourcesSucceeded int `json:"sources_succeeded"`
	SourcesFailed    int `json:"sources_failed"`
	LinksCollected   int `json:"links_collected"`
	Checked          int `json:"checked"`
	CacheSkipped     int `json:"cache_skipped"`
	FetchFailed      int `json:"fetch_failed"`
	Excluded         int `json:"excluded"`
	NotAIRelevant    int `json:"not_ai_relevant"`
	MajorNews        int `json:"major_news"`
	Candidates       int `json:"candidates"`
	Deduplicated     int `json:"deduplicated"`
	Selected         int `json:"selected"`
}

// Options override configured limits for a single run. Zero values fall
// back to the configuration.
type Options struct {
	MaxArticles int `json:"max_articles"`
	MaxStories  int `json:"max_stories"`
}

// Result is the outcome of one selection run.
type Result struct {
	Stories    []models.SelectedStory `json:"stories"`
	Stats      Stats                  `json:"stats"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
}

// collected ties a candidate URL back to the source it came from so the
// source weight survives until scoring.
type collected struct {
	url       string
	source    string
	weight    float64
	candidate *models.ArticleCandidate
}

// Orchestrator drives a run through collection, classification, ranking,
// deduplication and selection. A single Orchestrator never runs twice
// concurrently.
type Orchestrator struct {
	cfg      *config.Config
	registry []sources.Descriptor
	links    feeds.LinkFetcher
	articles article.Fetcher
	coverage CoverageStore
	cache    cache.ProcessedCache

	gate   classify.Gate
	scorer classify.Scorer

	now func() time.Time

	mu    sync.Mutex
	state State
}

func New(cfg *config.Config, registry []sources.Descriptor, links feeds.LinkFetcher, articles article.Fetcher, coverage CoverageStore, processed cache.ProcessedCache) *Orchestrator {
	if processed == nil {
		processed = cache.NewMemoryCache()
	}
	return &Orchestrator{
		cfg:      cfg,
		registry: registry,
		links:    links,
		articles: articles,
		coverage: coverage,
		cache:    processed,
		gate: classify.Gate{
			AIOnly:      cfg.AIOnlyMode,
			MinKeywords: cfg.MinAIKeywords,
			MinDensity:  cfg.MinAIDensity,
		},
		scorer: classify.Scorer{
			AIOnly:   cfg.AIOnlyMode,
			Boost:    cfg.AIKeywordBoost,
			MinScore: cfg.MinAIScore,
		},
		now:   time.Now,
		state: StateIdle,
	}
}

// State returns the current run phase.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	logger.Info().Str("state", string(s)).Msg("Run state changed")
}

// Run executes one full selection pass. An empty result is a valid outcome:
// finding nothing worth covering is not an error.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Result, error) {
	maxArticles := o.cfg.MaxArticles
	if opts.MaxArticles > 0 {
		maxArticles = opts.MaxArticles
	}
	maxStories := o.cfg.MaxStories
	if opts.MaxStories > 0 {
		maxStories = opts.MaxStories
	}

	result := &Result{StartedAt: o.now().UTC()}
	defer func() {
		result.FinishedAt = o.now().UTC()
		o.setState(StateDone)
	}()

	o.setState(StateCollecting)
	links := o.collect(ctx, &result.Stats, maxArticles)
	if len(links) == 0 {
		logger.Error().Msg("No links collected from any source")
		return result, nil
	}

	o.setState(StateClassifying)
	candidates := o.classify(ctx, links, &result.Stats, maxArticles)

	o.setState(StateRanking)
	ranked := o.rank(candidates, &result.Stats)
	if len(ranked) == 0 {
		logger.Error().Msg("No candidates survived classification and ranking")
		return result, nil
	}

	o.setState(StateDeduplicating)
	fresh := o.deduplicate(ranked, &result.Stats)

	o.setState(StateSelecting)
	result.Stories = o.selectTop(fresh, &result.Stats, maxStories)

	logger.Info().
		Int("checked", result.Stats.Checked).
		Int("excluded", result.Stats.Excluded).
		Int("selected", result.Stats.Selected).
		Msg("Selection run complete")
	return result, nil
}

// collect walks sources in descending weight order, pausing briefly between
// them, and gathers candidate links until there is a comfortable surplus
// over the article check budget.
func (o *Orchestrator) collect(ctx context.Context, stats *Stats, maxArticles int) []collected {
	target := maxArticles * 3
	seen := make(map[string]struct{})
	var links []collected

	for i, src := range sources.ByWeightDesc(o.registry) {
		if ctx.Err() != nil {
			break
		}
		if len(links) >= target {
			break
		}
		if i > 0 {
			o.politenessDelay(ctx)
		}

		urls := o.links.Fetch(ctx, src, maxArticles)
		if len(urls) == 0 {
			stats.SourcesFailed++
			continue
		}
		stats.SourcesSucceeded++

		for _, url := range urls {
			if _, dup := seen[url]; dup {
				continue
			}
			seen[url] = struct{}{}
			links = append(links, collected{url: url, source: src.Name, weight: src.Weight})
		}
	}

	stats.LinksCollected = len(links)
	logger.Info().
		Int("links", len(links)).
		Int("sources_ok", stats.SourcesSucceeded).
		Int("sources_failed", stats.SourcesFailed).
		Msg("Collection finished")
	return links
}

func (o *Orchestrator) politenessDelay(ctx context.Context) {
	if o.cfg.SourceDelayMax <= 0 {
		return
	}
	delay := o.cfg.SourceDelayMin
	if span := o.cfg.SourceDelayMax - o.cfg.SourceDelayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	select {
	case <-time.After(delay):
	case <-ctx.Done():
	}
}

// classify fetches each link and applies the exclusion scorer and the AI
// relevance gate, stopping once enough candidates have been accepted.
func (o *Orchestrator) classify(ctx context.Context, links []collected, stats *Stats, maxArticles int) []collected {
	var kept []collected

	for _, link := range links {
		if ctx.Err() != nil {
			break
		}
		if len(kept) >= maxArticles {
			break
		}

		hash := utils.Hash(link.url)
		if done, err := o.cache.IsProcessed(ctx, hash); err == nil && done {
			stats.CacheSkipped++
			continue
		}

		candidate, err := o.articles.Fetch(ctx, link.url)
		if err != nil {
			stats.FetchFailed++
			logger.Debug().Err(err).Str("url", link.url).Msg("Skipping unfetchable article")
			continue
		}
		candidate.Source = link.source
		stats.Checked++

		if reason, excluded := classify.ExclusionReason(candidate); excluded {
			stats.Excluded++
			o.markProcessed(ctx, hash)
			logger.Info().Str("url", link.url).Str("reason", reason).Msg("Article excluded")
			continue
		}

		if !o.gate.IsRelevant(candidate) {
			stats.NotAIRelevant++
			o.markProcessed(ctx, hash)
			logger.Debug().Str("url", link.url).Msg("Article not AI relevant")
			continue
		}

		link.candidate = candidate
		kept = append(kept, link)
	}

	logger.Info().
		Int("checked", stats.Checked).
		Int("kept", len(kept)).
		Int("excluded", stats.Excluded).
		Int("not_relevant", stats.NotAIRelevant).
		Msg("Classification finished")
	return kept
}

func (o *Orchestrator) markProcessed(ctx context.Context, hash string) {
	if err := o.cache.MarkProcessed(ctx, hash, o.cfg.CacheTTL); err != nil {
		logger.Debug().Err(err).Msg("Failed to mark article processed")
	}
}

// rank scores the surviving candidates and orders them best first. Zero
// scores mean the scorer rejected the candidate.
func (o *Orchestrator) rank(candidates []collected, stats *Stats) []collected {
	now := o.now()
	var ranked []collected

	for _, item := range candidates {
		score := o.scorer.Score(item.candidate, item.weight, now)
		if o.cfg.AIOnlyMode && score == 0 {
			stats.NotAIRelevant++
			continue
		}
		item.candidate.Score = score
		if classify.IsMajorNews(item.candidate, o.cfg.AIOnlyMode, now) {
			stats.MajorNews++
		}
		ranked = append(ranked, item)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].candidate.Score > ranked[j].candidate.Score
	})

	stats.Candidates = len(ranked)
	logger.Info().Int("candidates", len(ranked)).Int("major_news", stats.MajorNews).Msg("Ranking finished")
	return ranked
}

// deduplicate drops candidates whose URL is already in the coverage ledger.
func (o *Orchestrator) deduplicate(ranked []collected, stats *Stats) []collected {
	covered := o.coverage.Load()
	var fresh []collected

	for _, item := range ranked {
		if _, dup := covered[item.url]; dup {
			stats.Deduplicated++
			logger.Debug().Str("url", item.url).Msg("Already covered, skipping")
			continue
		}
		fresh = append(fresh, item)
	}

	logger.Info().Int("fresh", len(fresh)).Int("already_covered", stats.Deduplicated).Msg("Deduplication finished")
	return fresh
}

// selectTop takes the best candidates up to the configured story limit.
func (o *Orchestrator) selectTop(fresh []collected, stats *Stats, maxStories int) []models.SelectedStory {
	var stories []models.SelectedStory
	for _, item := range fresh {
		if len(stories) >= maxStories {
			break
		}
		c := item.candidate
		stories = append(stories, models.SelectedStory{
			ID:        utils.ShortID(c.URL),
			Title:     c.Title,
			URL:       c.URL,
			Summary:   c.Summary,
			Text:      c.Text,
			ImageURL:  c.ImageURL,
			Published: c.Published,
			Source:    c.Source,
			Score:     c.Score,
			AIDensity: classify.Density(c),
			Keywords:  classify.MatchedKeywords(c, 5),
		})
	}

	stats.Selected = len(stories)
	return stories
}
