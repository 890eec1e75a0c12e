package classify

import (
	"math"
	"strings"
	"time"

	"github.com/storywire/storywire/internal/models"
)

// Scorer turns an accepted candidate into a rank score using a deterministic
// multi-term formula. A zero score means the candidate is dropped before
// ranking.
type Scorer struct {
	AIOnly   bool
	Boost    float64
	MinScore float64
}

// Score computes the rank score for a candidate fetched from a source with
// the given trust weight. The result is rounded to two decimal places.
func (s Scorer) Score(c *models.ArticleCandidate, sourceWeight float64, now time.Time) float64 {
	if s.AIOnly && !HasPrimaryContext(c) {
		return 0.0
	}

	text := strings.ToLower(c.Title + " " + c.Summary)
	primary := strings.ToLower(c.Title + " " + head(c.Summary, 200))

	matches := 0
	primaryMatches := 0
	score := 0.0
	for keyword, weight := range aiKeywords {
		if !strings.Contains(text, keyword) {
			continue
		}
		matches++
		score += weight * s.Boost
		if strings.Contains(primary, keyword) {
			primaryMatches++
			score += weight * 0.5
		}
	}

	if s.AIOnly && matches == 0 {
		return 0.0
	}

	// Major-news bonus counts only when AI is the primary topic.
	majorScore := 0.0
	if primaryMatches > 0 {
		for indicator, weight := range majorNewsIndicators {
			if strings.Contains(text, indicator) {
				majorScore += weight
			}
		}
	}
	score += majorScore
	if primaryMatches > 0 && majorScore > 0 {
		score += 3.0
	}

	switch {
	case primaryMatches >= 3:
		score += 2.5
	case primaryMatches >= 2:
		score += 1.5
	case primaryMatches >= 1:
		score += 0.5
	}

	switch {
	case matches >= 3:
		score += 2.0
	case matches >= 2:
		score += 1.0
	}

	if c.Published != nil {
		ageHours := now.Sub(*c.Published).Hours()
		score += math.Max(0, 48-ageHours) / 48 * 2.5
	}

	score += sourceWeight

	if c.WordCount() > 600 {
		score += 0.5
	}

	if s.AIOnly && score < s.MinScore {
		return 0.0
	}
	return math.Round(score*100) / 100
}

// IsMajorNews reports whether the candidate is a major AI story: AI keywords
// plus either a major-news indicator or substantial recent content. Used for
// run telemetry only.
func IsMajorNews(c *models.ArticleCandidate, aiOnly bool, now time.Time) bool {
	if !aiOnly {
		return true
	}

	text := strings.ToLower(c.Title + " " + c.Summary)

	hasAI := false
	for keyword := range aiKeywords {
		if strings.Contains(text, keyword) {
			hasAI = true
			break
		}
	}
	if !hasAI {
		return false
	}

	for indicator := range majorNewsIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}

	recent := true
	if c.Published != nil {
		recent = now.Sub(*c.Published).Hours() <= 72
	}
	return c.WordCount() >= 300 && recent
}
