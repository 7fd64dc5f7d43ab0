// Package hn implements the fetch/cache/ordering pipeline against the
// Hacker News read-only API: a two-tier HTTP client (Algolia batch-tree
// primary, Firebase per-item BFS fallback) with a deterministic depth-first
// flattener for comment threads.
package hn

import (
	"strconv"
	"strings"
)

// Story is a ranked feed item.
type Story struct {
	ID          int64
	Title       string
	URL         string // empty for text-only submissions ("Ask HN" etc.)
	Score       int
	By          string
	Time        int64
	Descendants int
	Kids        []int64 // root comment ids, display order
	ReadAt      *int64  // local user state, never overwritten by refetch
	FavoritedAt *int64
}

// Domain extracts the host component of Story.URL, or "" for self-posts.
func (s Story) Domain() string {
	if s.URL == "" {
		return ""
	}
	rest := s.URL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// HNUrl is the permalink to this story's comments page.
func (s Story) HNUrl() string {
	return "https://news.ycombinator.com/item?id=" + strconv.FormatInt(s.ID, 10)
}

// ContentUrl is the URL a reader should open: the external link if present,
// otherwise the HN discussion page for text-only submissions.
func (s Story) ContentUrl() string {
	if s.URL != "" {
		return s.URL
	}
	return s.HNUrl()
}

// Comment is a single node in a story's thread.
type Comment struct {
	ID          int64
	Text        string // HTML, entity-decoded
	By          string
	Time        int64
	Depth       int // 0 = root of story's thread
	Kids        []int64
	FavoritedAt *int64
}
