package hn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	hnerrors "hntui/internal/errors"
)

const maxConcurrentFetch = 8

// Storage is the subset of the persistent cache the Client reads through
// and writes through. Implemented by internal/storage.Store.
type Storage interface {
	GetFreshStory(ctx context.Context, id int64) (Story, bool, error)
	SaveStory(ctx context.Context, story Story) (Story, error)
	GetFreshComments(ctx context.Context, storyID int64) ([]Comment, bool, error)
	SaveComments(ctx context.Context, storyID int64, comments []Comment) error
}

// Client fetches stories and comments from the upstream Hacker News API,
// applying Storage as a read-through and write-through cache.
type Client struct {
	httpClient   *http.Client
	algoliaBase  string
	firebaseBase string
	pageSize     int
	storage      Storage
}

// NewClient builds a Client against the given base URLs. timeout bounds
// every individual HTTP request (not the overall page fetch, which
// fans out concurrently).
func NewClient(algoliaBase, firebaseBase string, pageSize int, timeout time.Duration, storage Storage) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: timeout},
		algoliaBase:  strings.TrimRight(algoliaBase, "/"),
		firebaseBase: strings.TrimRight(firebaseBase, "/"),
		pageSize:     pageSize,
		storage:      storage,
	}
}

// FetchFeedIDs fetches the current ranked id list for a feed. There is no
// caching here: the list is authoritative about current ranking and is
// always re-fetched.
func (c *Client) FetchFeedIDs(ctx context.Context, feed Feed) ([]int64, error) {
	if feed.IsLocal() {
		return nil, hnerrors.New(hnerrors.CodeParse, "feed has no upstream endpoint", nil)
	}
	var ids []int64
	if err := c.getFirebaseJSON(ctx, feed.Endpoint()+".json", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// FetchStories returns one page of stories for a feed, reading fresh hits
// from Storage and fetching the rest concurrently from the network.
func (c *Client) FetchStories(ctx context.Context, feed Feed, page int, forceRefresh bool) ([]Story, error) {
	ids, err := c.FetchFeedIDs(ctx, feed)
	if err != nil {
		return nil, err
	}

	start := page * c.pageSize
	if start >= len(ids) {
		return []Story{}, nil
	}
	end := start + c.pageSize
	if end > len(ids) {
		end = len(ids)
	}
	window := ids[start:end]

	stories := make([]*Story, len(window))
	var toFetch []int
	for i, id := range window {
		if forceRefresh {
			toFetch = append(toFetch, i)
			continue
		}
		if cached, ok, err := c.storage.GetFreshStory(ctx, id); err == nil && ok {
			s := cached
			stories[i] = &s
			continue
		}
		toFetch = append(toFetch, i)
	}

	fetched, err := c.fetchItemsConcurrently(ctx, idsAt(window, toFetch))
	if err != nil {
		return nil, err
	}

	for n, idx := range toFetch {
		item := fetched[n]
		story, ok := itemToStory(item)
		if !ok {
			continue
		}
		saved, err := c.storage.SaveStory(ctx, story)
		if err != nil {
			return nil, hnerrors.New(hnerrors.CodeStorage, "save story", err)
		}
		stories[idx] = &saved
	}

	out := make([]Story, 0, len(stories))
	for _, s := range stories {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

// FetchCommentsFlat returns a story's comments in depth-first display
// order, trying the Algolia batch-tree endpoint first and falling back to
// a per-item Firebase BFS crawl if the primary request fails. A primary
// response that comes back empty despite the story reporting descendants
// is treated as a failure too, since Algolia indexing lag can otherwise
// silently present an empty thread.
func (c *Client) FetchCommentsFlat(ctx context.Context, story Story, forceRefresh bool) ([]Comment, error) {
	if !forceRefresh {
		if cached, ok, err := c.storage.GetFreshComments(ctx, story.ID); err == nil && ok {
			byID := make(map[int64]Comment, len(cached))
			for _, comment := range cached {
				byID[comment.ID] = comment
			}
			return flattenCached(story.Kids, byID), nil
		}
	}

	comments, err := c.fetchCommentsViaAlgolia(ctx, story.ID)
	if err == nil && len(comments) == 0 && story.Descendants > 0 {
		err = hnerrors.New(hnerrors.CodeParse, "primary returned no comments for a non-empty thread", nil)
	}
	if err != nil {
		comments, err = c.fetchCommentsViaBFS(ctx, story.Kids)
		if err != nil {
			return nil, err
		}
	}

	if err := c.storage.SaveComments(ctx, story.ID, comments); err != nil {
		return nil, hnerrors.New(hnerrors.CodeStorage, "save comments", err)
	}
	return comments, nil
}

func (c *Client) fetchCommentsViaAlgolia(ctx context.Context, storyID int64) ([]Comment, error) {
	var root algoliaItem
	url := fmt.Sprintf("%s/items/%d", c.algoliaBase, storyID)
	if err := c.getJSON(ctx, url, &root); err != nil {
		return nil, err
	}
	return flattenAlgolia(root.Children), nil
}

func (c *Client) fetchCommentsViaBFS(ctx context.Context, rootKids []int64) ([]Comment, error) {
	byID := make(map[int64]hnItem)
	attempted := make(map[int64]struct{})

	queue := append([]int64(nil), rootKids...)
	for len(queue) > 0 {
		items, err := c.fetchItemsConcurrentlyByID(ctx, queue)
		if err != nil {
			return nil, err
		}

		var next []int64
		for i, id := range queue {
			attempted[id] = struct{}{}
			item := items[i]
			if !item.live() {
				continue
			}
			byID[id] = *item
			next = append(next, item.Kids...)
		}
		queue = next
	}

	return flattenFetchedMap(rootKids, byID, attempted), nil
}

// fetchItemsConcurrently fans out item fetches by list index, bounded by a
// semaphore; a per-item failure is dropped (nil result) rather than
// failing the whole page.
func (c *Client) fetchItemsConcurrently(ctx context.Context, ids []int64) ([]*hnItem, error) {
	results := make([]*hnItem, len(ids))
	sem := make(chan struct{}, maxConcurrentFetch)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(idx int, itemID int64) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			item, err := c.fetchItem(ctx, itemID)
			if err != nil {
				return
			}
			results[idx] = item
		}(i, id)
	}
	wg.Wait()
	return results, nil
}

// fetchItemsConcurrentlyByID is the BFS crawl's per-wave fetch: unlike
// fetchItemsConcurrently it never silently drops a result — a missing
// fetch becomes a non-live placeholder so the caller's attempted-set
// bookkeeping stays accurate.
func (c *Client) fetchItemsConcurrentlyByID(ctx context.Context, ids []int64) ([]*hnItem, error) {
	results := make([]*hnItem, len(ids))
	sem := make(chan struct{}, maxConcurrentFetch)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(idx int, itemID int64) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			item, err := c.fetchItem(ctx, itemID)
			if err != nil || item == nil {
				results[idx] = &hnItem{ID: itemID, Deleted: true}
				return
			}
			results[idx] = item
		}(i, id)
	}
	wg.Wait()
	return results, nil
}

func (c *Client) fetchItem(ctx context.Context, id int64) (*hnItem, error) {
	var item hnItem
	path := fmt.Sprintf("item/%d.json", id)
	if err := c.getFirebaseJSON(ctx, path, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) getFirebaseJSON(ctx context.Context, path string, dst any) error {
	return c.getJSON(ctx, c.firebaseBase+"/"+strings.TrimLeft(path, "/"), dst)
}

func (c *Client) getJSON(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return hnerrors.New(hnerrors.CodeNetwork, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return hnerrors.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return hnerrors.NewHTTPStatus(resp.StatusCode, resp.Status)
	}

	decoder := json.NewDecoder(io.LimitReader(resp.Body, 4_000_000))
	if err := decoder.Decode(dst); err != nil {
		return hnerrors.New(hnerrors.CodeParse, "decode response", err)
	}
	return nil
}

func itemToStory(item *hnItem) (Story, bool) {
	if item == nil || !item.live() || item.Title == "" {
		return Story{}, false
	}
	return Story{
		ID:          item.ID,
		Title:       item.Title,
		URL:         item.URL,
		Score:       item.Score,
		By:          item.By,
		Time:        item.Time,
		Descendants: item.Descendants,
		Kids:        append([]int64(nil), item.Kids...),
	}, true
}

func idsAt(ids []int64, indices []int) []int64 {
	out := make([]int64, len(indices))
	for i, idx := range indices {
		out[i] = ids[idx]
	}
	return out
}
