package classify

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// Context-window helpers. All scanning works on lowercased text and byte
// positions; keywords are matched with word boundaries when they are single
// words and as literals when they contain spaces.

var exclusionPatterns = map[string]*regexp.Regexp{}

func init() {
	for keyword := range exclusionKeywordWeights {
		exclusionPatterns[keyword] = keywordPattern(keyword)
	}
}

func keywordPattern(keyword string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(keyword))
	if strings.Contains(keyword, " ") {
		return regexp.MustCompile(escaped)
	}
	return regexp.MustCompile(`\b` + escaped + `\b`)
}

// window returns text[pos-before : pos+after], clamped to the text bounds.
func window(text string, pos, before, after int) string {
	start := pos - before
	if start < 0 {
		start = 0
	}
	end := pos + after
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

var negationWords = []string{"not", "no", "never", "none", "neither", "without", "lack", "free from"}

var negationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(not|no|never)\s+\w+\s+(sale|deal|discount|promotion|ad|sponsored)`),
	regexp.MustCompile(`(?i)\b(without|free from|lack of)\s+(ads?|sponsors?|promotions?)`),
}

// hasNegationNearby reports whether a negation word or pattern appears within
// 30 characters of pos.
func hasNegationNearby(text string, pos int) bool {
	ctx := window(text, pos, 30, 30)
	for _, pattern := range negationPatterns {
		if pattern.MatchString(ctx) {
			return true
		}
	}
	for _, word := range negationWords {
		if strings.Contains(ctx, word) {
			return true
		}
	}
	return false
}

var shoppingIndicators = []string{"buy", "shop", "cart", "checkout", "purchase", "order", "sale", "discount"}

func isShoppingContext(text string, pos int) bool {
	ctx := window(text, pos, 50, 50)
	for _, indicator := range shoppingIndicators {
		if strings.Contains(ctx, indicator) {
			return true
		}
	}
	return false
}

var newsIndicators = []string{
	"announces", "reports", "reveals", "according", "study", "research",
	"findings", "analysis", "data", "company", "partnership", "acquisition",
}

func isNewsContext(text string, pos int) bool {
	ctx := window(text, pos, 50, 50)
	for _, indicator := range newsIndicators {
		if strings.Contains(ctx, indicator) {
			return true
		}
	}
	return false
}

var aiTechTerms = []string{
	"ai", "artificial intelligence", "machine learning", "neural", "model",
	"algorithm", "tech", "technology", "software", "platform", "system",
}

func hasAITechContext(text string, pos int) bool {
	ctx := window(text, pos, 100, 100)
	for _, term := range aiTechTerms {
		if strings.Contains(ctx, term) {
			return true
		}
	}
	return false
}

// promotionalDensity returns the percentage of words accounted for by
// urgency/marketing phrases.
func promotionalDensity(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0.0
	}

	lower := strings.ToLower(text)
	count := 0
	for _, phrase := range promotionalPhrases {
		count += strings.Count(lower, phrase)
	}
	return float64(count) / float64(len(words)) * 100
}

// countKeywordClusters counts groups of >= 2 keyword hits whose positions lie
// within maxDistance characters of each other.
func countKeywordClusters(text string, keywords []string, maxDistance int) int {
	var positions []int
	for _, keyword := range keywords {
		pattern, ok := exclusionPatterns[keyword]
		if !ok {
			pattern = keywordPattern(keyword)
		}
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			positions = append(positions, loc[0])
		}
	}

	if len(positions) < 2 {
		return 0
	}
	sort.Ints(positions)

	clusters := 0
	i := 0
	for i < len(positions)-1 {
		size := 1
		j := i + 1
		for j < len(positions) && positions[j]-positions[i] <= maxDistance {
			size++
			j++
		}
		if size >= 2 {
			clusters++
			i = j
		} else {
			i++
		}
	}
	return clusters
}

// registrableDomain extracts the host from a URL, minus any www. prefix.
func registrableDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	domain := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(domain, "www.")
}

// isShoppingDomain reports whether the URL belongs to a known retail domain.
func isShoppingDomain(rawURL string) bool {
	domain := registrableDomain(rawURL)
	if domain == "" {
		return false
	}
	for _, shop := range shoppingDomains {
		if strings.Contains(domain, shop) {
			return true
		}
	}
	return false
}
