package models

import "time"

// SelectedStory is what the engine hands to the downstream script/video
// pipeline for one chosen article.
type SelectedStory struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Summary   string     `json:"summary"`
	Text      string     `json:"text"`
	ImageURL  string     `json:"image_url,omitempty"`
	Published *time.Time `json:"published,omitempty"`
	Source    string     `json:"source"`
	Score     float64    `json:"score"`
	AIDensity float64    `json:"ai_density"`
	Keywords  []string   `json:"keywords,omitempty"`
}

// CoverageRecord is one entry of the covered-stories ledger, keyed by URL.
type CoverageRecord struct {
	Title       string  `json:"title"`
	DateCovered string  `json:"date_covered"`
	Source      string  `json:"source"`
	YouTubeID   *string `json:"youtube_id"`
	TikTokID    *string `json:"tiktok_id"`
}
