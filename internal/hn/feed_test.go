package hn

import "testing"

func TestFeedEndpoint(t *testing.T) {
	cases := map[Feed]string{
		FeedTop:       "topstories",
		FeedNew:       "newstories",
		FeedBest:      "beststories",
		FeedAsk:       "askstories",
		FeedShow:      "showstories",
		FeedJobs:      "jobstories",
		FeedFavorites: "",
	}
	for feed, want := range cases {
		if got := feed.Endpoint(); got != want {
			t.Errorf("%v.Endpoint() = %q, want %q", feed, got, want)
		}
	}
}

func TestFeedIsLocal(t *testing.T) {
	if !FeedFavorites.IsLocal() {
		t.Error("expected Favorites to be local")
	}
	if FeedTop.IsLocal() {
		t.Error("expected Top to not be local")
	}
}

func TestFeedNextPrevRoundTrip(t *testing.T) {
	for _, feed := range AllFeeds {
		if got := feed.Next().Prev(); got != feed {
			t.Errorf("Next().Prev() = %v, want %v", got, feed)
		}
	}
}

func TestFeedNextWraps(t *testing.T) {
	last := AllFeeds[len(AllFeeds)-1]
	if got := last.Next(); got != AllFeeds[0] {
		t.Errorf("last feed Next() = %v, want %v", got, AllFeeds[0])
	}
}

func TestFeedPrevWraps(t *testing.T) {
	first := AllFeeds[0]
	if got := first.Prev(); got != AllFeeds[len(AllFeeds)-1] {
		t.Errorf("first feed Prev() = %v, want %v", got, AllFeeds[len(AllFeeds)-1])
	}
}

func TestFeedLabelsNonEmpty(t *testing.T) {
	for _, feed := range AllFeeds {
		if feed.Label() == "" {
			t.Errorf("%v.Label() is empty", feed)
		}
	}
}
