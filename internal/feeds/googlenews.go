package feeds

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/sources"
)

// fetchGoogleNews queries the Google News search feed for the source's
// configured query and unwraps the redirect links Google returns.
func (f *Fetcher) fetchGoogleNews(ctx context.Context, src sources.Descriptor, maxEntries int) []string {
	feedURL := fmt.Sprintf(
		"https://news.google.com/rss/search?q=%s&hl=en&gl=US&ceid=US:en",
		url.QueryEscape(src.SearchQuery),
	)

	body, err := f.client.Get(ctx, feedURL, src.Headers)
	if err != nil {
		logger.Warn().Err(err).Str("source", src.Name).Msg("Failed to fetch Google News feed")
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		logger.Warn().Err(err).Str("source", src.Name).Msg("Failed to parse Google News feed")
		return nil
	}

	var links []string
	for _, item := range feed.Items {
		if len(links) >= maxEntries {
			break
		}
		link := unwrapGoogleLink(item.Link)
		if link != "" {
			links = append(links, link)
		}
	}

	logger.Debug().Int("links", len(links)).Str("source", src.Name).Msg("Fetched Google News links")
	return links
}

// unwrapGoogleLink extracts the target URL from Google's "url?q=" redirect
// wrapper, returning the raw link when it is not wrapped.
func unwrapGoogleLink(link string) string {
	if !strings.Contains(link, "url?q=") {
		return link
	}
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}
	if target := parsed.Query().Get("q"); target != "" {
		return target
	}
	return link
}
