package classify

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/storywire/storywire/internal/models"
)

const (
	exclusionThreshold   = 5
	clusterDistance      = 150
	shortArticleWords    = 150
	practicalFocusBoost  = 3
	maxAdjustedWeight    = 4
	titleMultiplier      = 1.5
	summaryMultiplier    = 1.25
	densityCutoffPercent = 2.0
)

// HasPracticalAIFocus reports whether the candidate is about hands-on AI
// applications rather than theory or merchandise.
func HasPracticalAIFocus(c *models.ArticleCandidate) bool {
	text := strings.ToLower(c.Title + " " + c.Summary)
	score := 0
	for term, weight := range practicalAIUseCases {
		if strings.Contains(text, term) {
			score += weight
		}
	}
	return score >= 3
}

// isOverlyAcademic reports whether the candidate reads like a paper and lacks
// any practical AI angle.
func isOverlyAcademic(c *models.ArticleCandidate) bool {
	text := strings.ToLower(c.Title + " " + c.Summary)
	score := 0
	for term, weight := range academicResearchIndicators {
		if strings.Contains(text, term) {
			score += weight
		}
	}
	return score >= 4 && !HasPracticalAIFocus(c)
}

// placementMultiplier returns the weight multiplier for a keyword found in
// the title or summary. Title takes precedence; body hits get no multiplier.
func placementMultiplier(c *models.ArticleCandidate, keyword string) float64 {
	pattern, ok := exclusionPatterns[keyword]
	if !ok {
		pattern = keywordPattern(keyword)
	}
	if pattern.MatchString(strings.ToLower(c.Title)) {
		return titleMultiplier
	}
	if pattern.MatchString(strings.ToLower(c.Summary)) {
		return summaryMultiplier
	}
	return 1.0
}

// ExclusionReason runs the weighted exclusion scorer over a candidate.
// It returns a human-readable reason and true when the candidate should be
// dropped, or ("", false) when it survives.
func ExclusionReason(c *models.ArticleCandidate) (string, bool) {
	fullText := strings.ToLower(c.Title + " " + c.Summary + " " + c.Text)
	headText := strings.ToLower(c.Title + " " + c.Summary)

	// Hard short-circuits, independent of weighted scoring.
	if isOverlyAcademic(c) {
		return "overly academic/research paper without practical AI focus", true
	}
	if isShoppingDomain(c.URL) {
		return "shopping/retail domain", true
	}
	if c.WordCount() < shortArticleWords {
		for _, marker := range shortArticleMarkers {
			if strings.Contains(headText, marker) {
				return "suspiciously short article with exclusion keywords", true
			}
		}
	}

	score := 0.0
	var reasons []string
	threshold := float64(exclusionThreshold)

	hasPracticalFocus := HasPracticalAIFocus(c)

	// Promotional language density.
	density := promotionalDensity(fullText)
	if density > densityCutoffPercent {
		score += math.Floor(density)
		reasons = append(reasons, "high promotional density")
	}

	// Weighted keyword scan with context adjustments.
	var matchedKeywords []string
	weightedHits := 0
	for keyword, baseWeight := range exclusionKeywordWeights {
		pattern := exclusionPatterns[keyword]
		locs := pattern.FindAllStringIndex(fullText, -1)
		if locs == nil {
			continue
		}

		for _, loc := range locs {
			pos := loc[0]
			if hasNegationNearby(fullText, pos) {
				continue
			}

			// Allowlisted usage nearby zeroes the hit.
			if allowed(keyword, window(fullText, pos, 30, 30)) {
				continue
			}

			weight := float64(baseWeight) * placementMultiplier(c, keyword)

			if hasAITechContext(fullText, pos) {
				weight = math.Max(0, weight-1)
			}
			if isNewsContext(fullText, pos) && !isShoppingContext(fullText, pos) {
				weight = math.Max(0, weight-1)
			}
			if isShoppingContext(fullText, pos) {
				weight = math.Min(weight+1, maxAdjustedWeight)
			}

			if weight > 0 {
				score += weight
				weightedHits++
				if !slices.Contains(matchedKeywords, keyword) {
					matchedKeywords = append(matchedKeywords, keyword)
				}
			}
		}
	}
	reasons = append(reasons, matchedKeywords...)

	// Clusters of exclusion keywords close together.
	if weightedHits >= 2 {
		clusters := countKeywordClusters(fullText, matchedKeywords, clusterDistance)
		if clusters > 0 {
			score += float64(clusters * 2)
			reasons = append(reasons, fmt.Sprintf("%d keyword cluster(s)", clusters))
		}
	}

	// Practical AI articles get the benefit of the doubt.
	if hasPracticalFocus {
		score = math.Max(0, score-practicalFocusBoost)
		if c.WordCount() > 500 {
			threshold += 2
		}
	}

	if score >= threshold {
		reason := fmt.Sprintf("exclusion score %.0f", score)
		if len(reasons) > 0 {
			limit := len(reasons)
			if limit > 3 {
				limit = 3
			}
			reason += " | keywords: " + strings.Join(reasons[:limit], ", ")
		}
		return reason, true
	}
	return "", false
}

func allowed(keyword, ctx string) bool {
	patterns, ok := legitimatePatterns[keyword]
	if !ok {
		return false
	}
	for _, pattern := range patterns {
		if pattern.MatchString(ctx) {
			return true
		}
	}
	return false
}
