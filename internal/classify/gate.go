package classify

import (
	"math"
	"sort"
	"strings"

	"github.com/storywire/storywire/internal/models"
)

// Gate decides whether a candidate is genuinely about AI. It is only
// consulted when AI-only mode is enabled; otherwise every candidate passes.
type Gate struct {
	AIOnly      bool
	MinKeywords int
	MinDensity  float64
}

// HasPrimaryContext reports whether AI is the story's main topic: a
// high-weight AI keyword in the title or the first 200 characters of the
// summary, or any AI keyword at all in the title.
func HasPrimaryContext(c *models.ArticleCandidate) bool {
	primary := strings.ToLower(c.Title + " " + head(c.Summary, 200))
	for keyword, weight := range aiKeywords {
		if weight >= highAIWeight && strings.Contains(primary, keyword) {
			return true
		}
	}

	title := strings.ToLower(c.Title)
	for keyword := range aiKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// Density returns the percentage of words in title + summary head that are
// AI keyword occurrences, rounded to two decimals.
func Density(c *models.ArticleCandidate) float64 {
	primary := strings.ToLower(c.Title + " " + head(c.Summary, 2000))
	words := strings.Fields(primary)
	if len(words) == 0 {
		return 0.0
	}

	count := 0
	for keyword := range aiKeywords {
		count += strings.Count(primary, keyword)
	}
	return math.Round(float64(count)/float64(len(words))*100*100) / 100
}

// IsRelevant applies the primary-context, density, and keyword-count
// requirements. All three must pass.
func (g Gate) IsRelevant(c *models.ArticleCandidate) bool {
	if !g.AIOnly {
		return true
	}

	if !HasPrimaryContext(c) {
		return false
	}
	if Density(c) < g.MinDensity {
		return false
	}

	text := strings.ToLower(c.Title + " " + c.Summary + " " + head(c.Text, 500))
	matches := 0
	highWeightMatches := 0
	for keyword, weight := range aiKeywords {
		if strings.Contains(text, keyword) {
			matches++
			if weight >= highAIWeight {
				highWeightMatches++
				matches++ // high-weight keywords count double
			}
		}
	}

	if highWeightMatches > 0 {
		return matches >= g.MinKeywords
	}
	return matches >= max(g.MinKeywords, 2)
}

// MatchedKeywords returns up to limit AI keywords found in the title or
// summary, sorted for stable output.
func MatchedKeywords(c *models.ArticleCandidate, limit int) []string {
	text := strings.ToLower(c.Title + " " + c.Summary)
	var matched []string
	for keyword := range aiKeywords {
		if strings.Contains(text, keyword) {
			matched = append(matched, keyword)
		}
	}
	sort.Strings(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// head returns at most n characters from the start of s, never splitting a
// multi-byte rune.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
