package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/storywire/storywire/internal/logger"
)

const hnBaseURL = "https://hacker-news.firebaseio.com/v0"

// aiTitleMarkers is the quick lexical check applied to Hacker News titles;
// the full relevance gate runs later in the pipeline.
var aiTitleMarkers = []string{
	"ai", "artificial intelligence", "machine learning", "llm", "gpt", "claude", "gemini", "neural",
}

type hnStory struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Score int    `json:"score"`
}

// fetchHackerNews walks the top-stories list, keeping stories that have an
// external URL and an AI marker in the title, until maxEntries are found.
// Three times maxEntries ids are resolved to leave room for filtering.
func (f *Fetcher) fetchHackerNews(ctx context.Context, maxEntries int) []string {
	body, err := f.client.Get(ctx, hnBaseURL+"/topstories.json", nil)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to fetch Hacker News top stories")
		return nil
	}

	var ids []int64
	if err := json.Unmarshal(body, &ids); err != nil {
		logger.Warn().Err(err).Msg("Malformed Hacker News top stories response")
		return nil
	}

	limit := maxEntries * 3
	if limit > len(ids) {
		limit = len(ids)
	}

	var links []string
	for _, id := range ids[:limit] {
		if len(links) >= maxEntries {
			break
		}

		itemBody, err := f.client.Get(ctx, fmt.Sprintf("%s/item/%d.json", hnBaseURL, id), nil)
		if err != nil {
			logger.Debug().Err(err).Int64("id", id).Msg("Failed to fetch Hacker News story")
			continue
		}

		var story hnStory
		if err := json.Unmarshal(itemBody, &story); err != nil || story.URL == "" || story.Title == "" {
			continue
		}

		title := strings.ToLower(story.Title)
		for _, marker := range aiTitleMarkers {
			if strings.Contains(title, marker) {
				links = append(links, story.URL)
				break
			}
		}
	}

	logger.Debug().Int("links", len(links)).Msg("Fetched Hacker News links")
	return links
}
