package feeds

import (
	"context"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/mmcdole/gofeed/atom"
	"github.com/mmcdole/gofeed/rss"

	"github.com/storywire/storywire/internal/logger"
	"github.com/storywire/storywire/internal/sources"
)

// fetchFeed handles generic feed sources: RSS 2.0 first, then Atom, then the
// universal parser which also covers RSS 1.0. An HTML body means the feed is
// blocked or the URL is wrong, not a parse failure.
func (f *Fetcher) fetchFeed(ctx context.Context, src sources.Descriptor, maxEntries int) []string {
	body, err := f.client.Get(ctx, src.URL, src.Headers)
	if err != nil {
		logger.Warn().Err(err).Str("source", src.Name).Msg("Failed to fetch feed")
		return nil
	}

	if looksLikeHTML(body) {
		logger.Warn().Str("source", src.Name).Msg("Feed returned HTML instead of XML (may be blocked or URL incorrect)")
		return nil
	}

	content := string(body)

	links := rssLinks(content, maxEntries)
	if len(links) == 0 {
		links = atomLinks(content, maxEntries)
	}
	if len(links) == 0 {
		links = universalLinks(content, maxEntries)
	}

	if len(links) == 0 {
		logger.Warn().Str("source", src.Name).Msg("No links found in feed (may be empty or malformed)")
	} else {
		logger.Debug().Int("links", len(links)).Str("source", src.Name).Msg("Fetched feed links")
	}
	return links
}

// looksLikeHTML inspects the head of the body for an HTML document marker.
func looksLikeHTML(body []byte) bool {
	headLen := 500
	if len(body) < headLen {
		headLen = len(body)
	}
	preview := strings.ToLower(string(body[:headLen]))
	return strings.Contains(preview, "<html") || strings.Contains(preview, "<!doctype html")
}

// rssLinks extracts item links from an RSS 2.0 document, falling back to the
// item GUID when no link is present.
func rssLinks(content string, maxEntries int) []string {
	feed, err := (&rss.Parser{}).Parse(strings.NewReader(content))
	if err != nil || feed == nil {
		return nil
	}

	var links []string
	for _, item := range feed.Items {
		if len(links) >= maxEntries {
			break
		}
		link := strings.TrimSpace(item.Link)
		if link == "" && item.GUID != nil {
			link = strings.TrimSpace(item.GUID.Value)
		}
		if link != "" {
			links = append(links, link)
		}
	}
	return links
}

// atomLinks extracts entry links from an Atom document, falling back to the
// entry id.
func atomLinks(content string, maxEntries int) []string {
	feed, err := (&atom.Parser{}).Parse(strings.NewReader(content))
	if err != nil || feed == nil {
		return nil
	}

	var links []string
	for _, entry := range feed.Entries {
		if len(links) >= maxEntries {
			break
		}
		link := ""
		if len(entry.Links) > 0 {
			link = strings.TrimSpace(entry.Links[0].Href)
		}
		if link == "" {
			link = strings.TrimSpace(entry.ID)
		}
		if link != "" {
			links = append(links, link)
		}
	}
	return links
}

// universalLinks is the last resort: gofeed's format detection handles
// RSS 1.0 and anything else the dedicated parsers rejected.
func universalLinks(content string, maxEntries int) []string {
	feed, err := gofeed.NewParser().ParseString(content)
	if err != nil || feed == nil {
		return nil
	}

	var links []string
	for _, item := range feed.Items {
		if len(links) >= maxEntries {
			break
		}
		link := strings.TrimSpace(item.Link)
		if link == "" {
			link = strings.TrimSpace(item.GUID)
		}
		if link != "" {
			links = append(links, link)
		}
	}
	return links
}
