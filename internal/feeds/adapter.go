package feeds

import (
	"context"
	"time"

	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/sources"
)

// LinkFetcher turns a source descriptor into a list of candidate URLs.
// Implementations never return an error: any failure is logged and produces
// an empty list, so one bad source cannot abort a collection run.
type LinkFetcher interface {
	Fetch(ctx context.Context, src sources.Descriptor, maxEntries int) []string
}

// Fetcher dispatches to the per-kind adapters over a shared HTTP client.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a Fetcher with a 15-second request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{client: NewClient(15 * time.Second)}
}

// Fetch returns up to maxEntries candidate URLs for the source.
func (f *Fetcher) Fetch(ctx context.Context, src sources.Descriptor, maxEntries int) []string {
	switch src.Kind {
	case sources.KindGoogleNews:
		if src.SearchQuery == "" {
			return nil
		}
		return f.fetchGoogleNews(ctx, src, maxEntries)
	case sources.KindReddit:
		return f.fetchReddit(ctx, src.Subreddit(), maxEntries)
	case sources.KindHackerNews:
		return f.fetchHackerNews(ctx, maxEntries)
	case sources.KindRSS:
		if src.URL == "" {
			return nil
		}
		return f.fetchFeed(ctx, src, maxEntries)
	default:
		logger.Warn().Str("source", src.Name).Str("kind", string(src.Kind)).Msg("Unknown source kind")
		return nil
	}
}
