package feeds

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/storywire/storywire/internal/logger"
)

// Reddit blocks generic crawler agents on its JSON API; the public RSS feed
// with a bot-identifying user agent is reliable without auth.
const redditUserAgent = "storywire/1.0 (+https://github.com/storywire/storywire)"

// fetchReddit returns external links posted to a subreddit. Self-posts
// (links back to reddit.com) are skipped.
func (f *Fetcher) fetchReddit(ctx context.Context, subreddit string, maxEntries int) []string {
	if subreddit == "" {
		return nil
	}

	url := fmt.Sprintf("https://www.reddit.com/r/%s/.rss", subreddit)
	body, err := f.client.Get(ctx, url, map[string]string{"User-Agent": redditUserAgent})
	if err != nil {
		logger.Warn().Err(err).Str("subreddit", subreddit).Msg("Failed to fetch subreddit feed")
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		logger.Warn().Err(err).Str("subreddit", subreddit).Msg("Malformed subreddit feed")
		return nil
	}

	var links []string
	for _, item := range feed.Items {
		if len(links) >= maxEntries {
			break
		}
		link := strings.TrimSpace(item.Link)
		if link == "" || strings.HasPrefix(link, "https://www.reddit.com") {
			continue
		}
		links = append(links, link)
	}

	logger.Debug().Int("links", len(links)).Str("subreddit", subreddit).Msg("Fetched subreddit links")
	return links
}
