package hn

import "testing"

func TestStoryDomain(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"", ""},
		{"https://example.com/article", "example.com"},
		{"http://sub.example.com/path?q=1", "sub.example.com"},
		{"https://example.com", "example.com"},
	}
	for _, tc := range cases {
		s := Story{URL: tc.url}
		if got := s.Domain(); got != tc.want {
			t.Errorf("Domain(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestStoryHNUrl(t *testing.T) {
	s := Story{ID: 123}
	want := "https://news.ycombinator.com/item?id=123"
	if got := s.HNUrl(); got != want {
		t.Errorf("HNUrl() = %q, want %q", got, want)
	}
}

func TestStoryContentUrl(t *testing.T) {
	withURL := Story{ID: 1, URL: "https://example.com"}
	if got := withURL.ContentUrl(); got != "https://example.com" {
		t.Errorf("ContentUrl() = %q, want external URL", got)
	}

	textOnly := Story{ID: 2}
	if got := textOnly.ContentUrl(); got != textOnly.HNUrl() {
		t.Errorf("ContentUrl() = %q, want HNUrl() for text-only story", got)
	}
}
