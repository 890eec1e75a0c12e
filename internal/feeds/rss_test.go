package feeds

import "testing"

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>AI Wire</title>
    <link>https://example.com</link>
    <item>
      <title>First story</title>
      <link>https://example.com/first</link>
    </item>
    <item>
      <title>GUID only</title>
      <guid>https://example.com/second</guid>
    </item>
    <item>
      <title>Third story</title>
      <link>https://example.com/third</link>
    </item>
  </channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>AI Wire</title>
  <id>urn:uuid:feed</id>
  <updated>2026-08-25T00:00:00Z</updated>
  <entry>
    <title>Entry one</title>
    <id>urn:uuid:one</id>
    <link href="https://example.com/one"/>
    <updated>2026-08-25T00:00:00Z</updated>
  </entry>
  <entry>
    <title>Entry two</title>
    <id>https://example.com/two</id>
    <updated>2026-08-25T00:00:00Z</updated>
  </entry>
</feed>`

func TestRSSLinks(t *testing.T) {
	links := rssLinks(rssFixture, 10)
	want := []string{"https://example.com/first", "https://example.com/second", "https://example.com/third"}
	if len(links) != len(want) {
		t.Fatalf("rssLinks() = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestRSSLinksRespectsLimit(t *testing.T) {
	links := rssLinks(rssFixture, 2)
	if len(links) != 2 {
		t.Errorf("rssLinks() returned %d links with limit 2", len(links))
	}
}

func TestAtomLinks(t *testing.T) {
	links := atomLinks(atomFixture, 10)
	want := []string{"https://example.com/one", "https://example.com/two"}
	if len(links) != len(want) {
		t.Fatalf("atomLinks() = %v, want %v", links, want)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}

func TestUniversalLinksFallback(t *testing.T) {
	// The universal parser handles both formats.
	if links := universalLinks(rssFixture, 10); len(links) != 3 {
		t.Errorf("universalLinks(rss) = %d links, want 3", len(links))
	}
	if links := universalLinks(atomFixture, 10); len(links) == 0 {
		t.Error("universalLinks(atom) returned no links")
	}
}

func TestParsersRejectGarbage(t *testing.T) {
	if links := rssLinks("plainly not xml", 10); links != nil {
		t.Errorf("rssLinks(garbage) = %v, want nil", links)
	}
	if links := atomLinks("plainly not xml", 10); links != nil {
		t.Errorf("atomLinks(garbage) = %v, want nil", links)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"doctype page", "<!DOCTYPE html><html><body>blocked</body></html>", true},
		{"bare html tag", "<HTML><head></head></HTML>", true},
		{"rss document", rssFixture, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeHTML([]byte(tt.body)); got != tt.want {
				t.Errorf("looksLikeHTML() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnwrapGoogleLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{
			"https://www.google.com/url?q=https://example.com/story&sa=U",
			"https://example.com/story",
		},
		{"https://example.com/direct", "https://example.com/direct"},
		{"https://news.google.com/url?rct=j", "https://news.google.com/url?rct=j"},
	}

	for _, tt := range tests {
		if got := unwrapGoogleLink(tt.link); got != tt.want {
			t.Errorf("unwrapGoogleLink(%q) = %q, want %q", tt.link, got, tt.want)
		}
	}
}
