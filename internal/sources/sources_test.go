package sources

import "testing"

func TestSubreddit(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Reddit: MachineLearning", "machinelearning"},
		{"Reddit: artificial", "artificial"},
		{"Reddit r/LocalLLaMA", "localllama"},
		{"Reddit: Machine Learning", "machinelearning"},
	}

	for _, tt := range tests {
		d := Descriptor{Name: tt.name, Kind: KindReddit}
		if got := d.Subreddit(); got != tt.want {
			t.Errorf("Subreddit(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestByWeightDesc(t *testing.T) {
	descriptors := []Descriptor{
		{Name: "low", Weight: 5},
		{Name: "high", Weight: 10},
		{Name: "mid", Weight: 8},
	}

	sorted := ByWeightDesc(descriptors)

	wantOrder := []string{"high", "mid", "low"}
	for i, want := range wantOrder {
		if sorted[i].Name != want {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Name, want)
		}
	}

	// Input slice is left untouched.
	if descriptors[0].Name != "low" {
		t.Error("ByWeightDesc mutated its input")
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := Default()
	if len(registry) == 0 {
		t.Fatal("Default() returned no sources")
	}

	seen := map[string]bool{}
	for _, d := range registry {
		if d.Name == "" {
			t.Error("source with empty name")
		}
		if seen[d.Name] {
			t.Errorf("duplicate source name %q", d.Name)
		}
		seen[d.Name] = true

		if d.Weight <= 0 {
			t.Errorf("source %q has non-positive weight %v", d.Name, d.Weight)
		}

		switch d.Kind {
		case KindRSS:
			if d.URL == "" {
				t.Errorf("RSS source %q has no URL", d.Name)
			}
		case KindGoogleNews:
			if d.SearchQuery == "" {
				t.Errorf("Google News source %q has no search query", d.Name)
			}
		case KindReddit:
			if d.Subreddit() == "" {
				t.Errorf("Reddit source %q yields empty subreddit", d.Name)
			}
		case KindHackerNews:
		default:
			t.Errorf("source %q has unknown kind %q", d.Name, d.Kind)
		}
	}
}
