package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/storywire/storywire/internal/models"
)

func TestHasPrimaryContext(t *testing.T) {
	tests := []struct {
		name      string
		candidate *models.ArticleCandidate
		want      bool
	}{
		{
			name: "high-weight keyword in title",
			candidate: &models.ArticleCandidate{
				Title:   "OpenAI ships GPT-5 to all users",
				Summary: "The rollout starts this week.",
			},
			want: true,
		},
		{
			name: "high-weight keyword early in summary",
			candidate: &models.ArticleCandidate{
				Title:   "The biggest tech story of the week",
				Summary: "Anthropic released a new version of Claude that handles hour-long recordings.",
			},
			want: true,
		},
		{
			name: "no keywords anywhere",
			candidate: &models.ArticleCandidate{
				Title:   "Stock indexes fell sharply on Tuesday",
				Summary: "Investors pulled back from growth shares over fresh worries.",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasPrimaryContext(tt.candidate); got != tt.want {
				t.Errorf("HasPrimaryContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDensity(t *testing.T) {
	c := &models.ArticleCandidate{Title: "ai wins", Summary: ""}

	got := Density(c)
	if got != 50.0 {
		t.Errorf("Density() = %v, want 50.0", got)
	}

	// Deterministic across calls.
	if again := Density(c); again != got {
		t.Errorf("Density() not stable: %v then %v", got, again)
	}
}

func TestDensityEmpty(t *testing.T) {
	if got := Density(&models.ArticleCandidate{}); got != 0.0 {
		t.Errorf("Density() = %v, want 0.0", got)
	}
}

func TestGateIsRelevant(t *testing.T) {
	gate := Gate{AIOnly: true, MinKeywords: 1, MinDensity: 0.3}

	relevant := &models.ArticleCandidate{
		Title:   "OpenAI launches GPT-5 with stronger reasoning",
		Summary: "The new model improves coding and long-document work, the company said.",
		Text:    "Early testers report the model follows complex instructions reliably.",
	}
	if !gate.IsRelevant(relevant) {
		t.Error("IsRelevant() = false for a clearly AI story")
	}

	offTopic := &models.ArticleCandidate{
		Title:   "Stock indexes fell sharply on Tuesday",
		Summary: "Investors pulled back from growth shares over fresh worries.",
		Text:    "Bond yields climbed as the selloff deepened through the afternoon.",
	}
	if gate.IsRelevant(offTopic) {
		t.Error("IsRelevant() = true for a finance story with no AI angle")
	}

	// Gate disabled passes everything through.
	open := Gate{AIOnly: false}
	if !open.IsRelevant(offTopic) {
		t.Error("IsRelevant() = false with gate disabled")
	}
}

func TestHeadCountsCharactersNotBytes(t *testing.T) {
	if got := head("short", 10); got != "short" {
		t.Errorf("head() = %q, want %q", got, "short")
	}

	multibyte := strings.Repeat("é", 300)
	got := head(multibyte, 200)
	if !utf8.ValidString(got) {
		t.Error("head() split a rune at the boundary")
	}
	if n := utf8.RuneCountInString(got); n != 200 {
		t.Errorf("head() kept %d characters, want 200", n)
	}
}

func TestMatchedKeywords(t *testing.T) {
	c := &models.ArticleCandidate{
		Title:   "OpenAI launches GPT-5",
		Summary: "A major release for chatgpt users.",
	}

	got := MatchedKeywords(c, 3)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("MatchedKeywords() returned %d keywords, want 1..3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Errorf("MatchedKeywords() not sorted: %v", got)
		}
	}
}
