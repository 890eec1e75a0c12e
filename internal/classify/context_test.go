package classify

import (
	"strings"
	"testing"
)

func TestHasNegationNearby(t *testing.T) {
	negated := "there is no flash sale today"
	if !hasNegationNearby(negated, strings.Index(negated, "flash sale")) {
		t.Error("hasNegationNearby() missed a nearby negation word")
	}

	plain := "the flash sale starts this friday"
	if hasNegationNearby(plain, strings.Index(plain, "flash sale")) {
		t.Error("hasNegationNearby() reported a negation in plain text")
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		ctx     string
		want    bool
	}{
		{"business deal", "deal", "a new deal with the chipmaker", true},
		{"promo deal", "deal", "grab this deal before friday", false},
		{"peer review", "review", "a peer review of the findings", true},
		{"best practices", "best ", "best practices for shipping fast", true},
		{"sales figures", "sale", "sales figures for the quarter", true},
		{"unknown keyword", "clearance", "clearance event this weekend", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := allowed(tt.keyword, tt.ctx); got != tt.want {
				t.Errorf("allowed(%q, %q) = %v, want %v", tt.keyword, tt.ctx, got, tt.want)
			}
		})
	}
}

func TestShoppingAndNewsContext(t *testing.T) {
	shopping := "grab the discount at checkout before it ends"
	shopPos := strings.Index(shopping, "discount")
	if !isShoppingContext(shopping, shopPos) {
		t.Error("isShoppingContext() missed checkout language")
	}
	if isNewsContext(shopping, shopPos) {
		t.Error("isNewsContext() reported news language in shopping copy")
	}

	news := "the company announces a partnership to expand research"
	newsPos := strings.Index(news, "partnership")
	if !isNewsContext(news, newsPos) {
		t.Error("isNewsContext() missed announcement language")
	}
	if isShoppingContext(news, newsPos) {
		t.Error("isShoppingContext() reported shopping language in news copy")
	}
}

func TestPromotionalDensity(t *testing.T) {
	promo := "buy now before the special offer expires soon today only friends"
	if got := promotionalDensity(promo); got < 30 {
		t.Errorf("promotionalDensity() = %.2f, want at least 30", got)
	}

	neutral := "the committee gathered in the hall during the evening session"
	if got := promotionalDensity(neutral); got != 0 {
		t.Errorf("promotionalDensity() = %.2f for neutral text, want 0", got)
	}

	if got := promotionalDensity(""); got != 0 {
		t.Errorf("promotionalDensity() = %.2f for empty text, want 0", got)
	}
}

func TestCountKeywordClusters(t *testing.T) {
	keywords := []string{"sale", "deal"}

	near := "sale today and a deal tomorrow"
	if got := countKeywordClusters(near, keywords, 150); got != 1 {
		t.Errorf("countKeywordClusters() = %d for nearby hits, want 1", got)
	}

	far := "sale " + strings.Repeat("filler words here ", 12) + "deal ends"
	if got := countKeywordClusters(far, keywords, 150); got != 0 {
		t.Errorf("countKeywordClusters() = %d for distant hits, want 0", got)
	}

	if got := countKeywordClusters("nothing promotional here", keywords, 150); got != 0 {
		t.Errorf("countKeywordClusters() = %d with no hits, want 0", got)
	}
}
