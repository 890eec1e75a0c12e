package sources

import (
	"sort"
	"strings"
)

// Kind identifies which adapter handles a source.
type Kind string

const (
	KindRSS        Kind = "rss"
	KindReddit     Kind = "reddit"
	KindHackerNews Kind = "hackernews"
	KindGoogleNews Kind = "googlenews"
)

// Descriptor describes a single feed source. Descriptors are immutable and
// loaded once at startup.
type Descriptor struct {
	Name        string            `json:"name"`
	Kind        Kind              `json:"kind"`
	Weight      float64           `json:"weight"`
	URL         string            `json:"url,omitempty"`
	SearchQuery string            `json:"search_query,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// Subreddit derives the subreddit name from the descriptor name.
// "Reddit: MachineLearning" becomes "machinelearning".
func (d Descriptor) Subreddit() string {
	name := strings.ToLower(d.Name)
	if idx := strings.Index(name, "reddit:"); idx >= 0 {
		name = name[idx+len("reddit:"):]
	} else {
		name = strings.ReplaceAll(name, "reddit ", "")
		name = strings.ReplaceAll(name, "r/", "")
	}
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, " ", "")
	return strings.ReplaceAll(name, "/", "")
}

// ByWeightDesc returns a copy of descriptors sorted by weight, highest first,
// so higher-trust sources are collected before the article budget runs out.
func ByWeightDesc(descriptors []Descriptor) []Descriptor {
	sorted := make([]Descriptor, len(descriptors))
	copy(sorted, descriptors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	return sorted
}
