package hn

// Feed is a closed enum of story rankings the client can fetch.
// Favorites is local-only: it has no upstream endpoint and is served
// entirely from Storage.
type Feed int

const (
	FeedTop Feed = iota
	FeedNew
	FeedBest
	FeedAsk
	FeedShow
	FeedJobs
	FeedFavorites
)

// AllFeeds lists every feed in the order they appear in the feed-switch
// keybinding cycle; Favorites is last since it isn't a ranking.
var AllFeeds = []Feed{FeedTop, FeedNew, FeedBest, FeedAsk, FeedShow, FeedJobs, FeedFavorites}

// Endpoint returns the Firebase feed path segment for this feed (fetched
// as {endpoint}.json), or "" for Favorites (local-only, never fetched).
func (f Feed) Endpoint() string {
	switch f {
	case FeedTop:
		return "topstories"
	case FeedNew:
		return "newstories"
	case FeedBest:
		return "beststories"
	case FeedAsk:
		return "askstories"
	case FeedShow:
		return "showstories"
	case FeedJobs:
		return "jobstories"
	default:
		return ""
	}
}

// Label is the display name shown in the feed selector.
func (f Feed) Label() string {
	switch f {
	case FeedTop:
		return "Top"
	case FeedNew:
		return "New"
	case FeedBest:
		return "Best"
	case FeedAsk:
		return "Ask HN"
	case FeedShow:
		return "Show HN"
	case FeedJobs:
		return "Jobs"
	case FeedFavorites:
		return "Favorites"
	default:
		return "Unknown"
	}
}

// IsLocal reports whether this feed is served from Storage alone and
// never hits the network.
func (f Feed) IsLocal() bool {
	return f == FeedFavorites
}

// Next returns the feed that follows this one in AllFeeds, wrapping
// around at the end.
func (f Feed) Next() Feed {
	for i, candidate := range AllFeeds {
		if candidate == f {
			return AllFeeds[(i+1)%len(AllFeeds)]
		}
	}
	return AllFeeds[0]
}

// Prev returns the feed that precedes this one in AllFeeds, wrapping
// around at the start.
func (f Feed) Prev() Feed {
	for i, candidate := range AllFeeds {
		if candidate == f {
			return AllFeeds[(i-1+len(AllFeeds))%len(AllFeeds)]
		}
	}
	return AllFeeds[0]
}

// CachedFeed is a feed identity paired with its stored ordering and the
// time that ordering was fetched.
type CachedFeed struct {
	Feed      Feed
	StoryIDs  []int64
	FetchedAt int64
}
