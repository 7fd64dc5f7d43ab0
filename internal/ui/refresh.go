package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hntui/internal/hn"
)

const taskTimeout = 30 * time.Second

// loadStoriesCmd fetches one page of a feed. Favorites is local-only: it
// reads straight from storage and never touches the network. generation is
// copied onto the result so Update can drop it if a newer fetch has since
// been spawned (feed switch or explicit refresh).
func (m *App) loadStoriesCmd(feed hn.Feed, page, generation int, forceRefresh bool) tea.Cmd {
	results := m.results
	client := m.client
	store := m.store

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		if feed.IsLocal() {
			stories, err := store.GetFavoritedStories(ctx)
			results <- storiesResultMsg{
				generation: generation,
				feed:       feed,
				page:       page,
				stories:    stories,
				hasMore:    false,
				err:        err,
			}
			return nil
		}

		stories, err := client.FetchStories(ctx, feed, page, forceRefresh)
		hasMore := err == nil && len(stories) > 0
		results <- storiesResultMsg{
			generation: generation,
			feed:       feed,
			page:       page,
			stories:    stories,
			hasMore:    hasMore,
			err:        err,
		}
		return nil
	}
}

// loadCommentsCmd fetches a story's flattened comment thread. The result is
// tagged with the story id rather than a generation counter since comments
// belong to whichever story the user is currently viewing, not to a
// sequence of refreshes.
func (m *App) loadCommentsCmd(story hn.Story, forceRefresh bool) tea.Cmd {
	results := m.results
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()

		comments, err := client.FetchCommentsFlat(ctx, story, forceRefresh)
		results <- commentsResultMsg{
			storyID:  story.ID,
			story:    story,
			comments: comments,
			err:      err,
		}
		return nil
	}
}

// markStoryReadCmd persists the read marker in the background; the
// Controller applies the read flag to its in-memory slice immediately
// (see update.go) so the row dims without waiting on this round trip.
func (m *App) markStoryReadCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		_ = store.MarkStoryRead(ctx, id)
		return nil
	}
}

// toggleStoryFavoriteCmd persists a favorite toggle. The Controller flips
// its in-memory copy of FavoritedAt optimistically before this Cmd returns;
// if it fails silently here, the next feed switch to Favorites will show the
// true persisted state.
func (m *App) toggleStoryFavoriteCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		_, _ = store.ToggleStoryFavorite(ctx, id)
		return nil
	}
}

// toggleCommentFavoriteCmd persists a comment favorite toggle, mirroring
// toggleStoryFavoriteCmd.
func (m *App) toggleCommentFavoriteCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
		defer cancel()
		_, _ = store.ToggleCommentFavorite(ctx, id)
		return nil
	}
}
