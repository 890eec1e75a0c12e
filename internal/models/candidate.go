package models

import (
	"strings"
	"time"
)

// ArticleCandidate is a fetched and normalized article moving through the
// selection pipeline. Score is written by the ranking stage only.
type ArticleCandidate struct {
	Title     string     `json:"title"`
	URL       string     `json:"url"`
	Summary   string     `json:"summary"`
	Text      string     `json:"text"`
	ImageURL  string     `json:"image_url,omitempty"`
	Published *time.Time `json:"published,omitempty"`
	Source    string     `json:"source"`
	Score     float64    `json:"score"`
}

// WordCount returns the number of whitespace-separated words in the body text
func (c *ArticleCandidate) WordCount() int {
	if c.Text == "" {
		return 0
	}
	return len(strings.Fields(c.Text))
}

// AgeHours returns the candidate's age in hours, or -1 if no publish date is known
func (c *ArticleCandidate) AgeHours(now time.Time) float64 {
	if c.Published == nil {
		return -1
	}
	return now.Sub(*c.Published).Hours()
}
