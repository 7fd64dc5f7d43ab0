package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	hnerrors "hntui/internal/errors"
	"hntui/internal/hn"
)

func encodeKids(kids []int64) string {
	if len(kids) == 0 {
		return "[]"
	}
	b, err := json.Marshal(kids)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeKids(raw string) []int64 {
	var kids []int64
	if err := json.Unmarshal([]byte(raw), &kids); err != nil {
		return nil
	}
	return kids
}

// SaveStory upserts story by id. On conflict, read_at and favorited_at are
// preserved via COALESCE(existing, incoming) so that forcing a refresh
// never clears local user state. The merged row is returned.
func (s *Store) SaveStory(ctx context.Context, story hn.Story) (hn.Story, error) {
	var saved hn.Story
	err := s.submit(ctx, func(db *sql.DB) error {
		now := time.Now().Unix()
		_, err := db.ExecContext(ctx, `
			INSERT INTO stories (id, title, url, score, by, time, descendants, kids, fetched_at, read_at, favorited_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				url = excluded.url,
				score = excluded.score,
				by = excluded.by,
				time = excluded.time,
				descendants = excluded.descendants,
				kids = excluded.kids,
				fetched_at = excluded.fetched_at,
				read_at = COALESCE(stories.read_at, excluded.read_at),
				favorited_at = COALESCE(stories.favorited_at, excluded.favorited_at)
		`,
			story.ID, story.Title, nullableString(story.URL), story.Score, story.By,
			story.Time, story.Descendants, encodeKids(story.Kids), now,
			nullableInt64Ptr(story.ReadAt), nullableInt64Ptr(story.FavoritedAt),
		)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "save story", err)
		}

		row := db.QueryRowContext(ctx, storySelectSQL+" WHERE id = ?", story.ID)
		saved, err = scanStory(row)
		return err
	})
	return saved, err
}

// GetStory looks up a story directly, ignoring freshness.
func (s *Store) GetStory(ctx context.Context, id int64) (hn.Story, bool, error) {
	var story hn.Story
	var found bool
	err := s.submit(ctx, func(db *sql.DB) error {
		row := db.QueryRowContext(ctx, storySelectSQL+" WHERE id = ?", id)
		st, err := scanStory(row)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get story", err)
		}
		story, found = st, true
		return nil
	})
	return story, found, err
}

// GetFreshStory is GetStory filtered by the cache TTL.
func (s *Store) GetFreshStory(ctx context.Context, id int64) (hn.Story, bool, error) {
	var story hn.Story
	var found bool
	err := s.submit(ctx, func(db *sql.DB) error {
		var fetchedAt int64
		row := db.QueryRowContext(ctx, storyWithFetchedAtSelectSQL+` WHERE id = ?`, id)
		st, fa, err := scanStoryWithFetchedAt(row)
		fetchedAt = fa
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get fresh story", err)
		}
		if isFresh(fetchedAt) {
			story, found = st, true
		}
		return nil
	})
	return story, found, err
}

const storyColumnsSQL = `id, title, url, score, by, time, descendants, kids, read_at, favorited_at`
const storySelectSQL = `SELECT ` + storyColumnsSQL + ` FROM stories`
const storyWithFetchedAtSelectSQL = `SELECT ` + storyColumnsSQL + `, fetched_at FROM stories`

func scanStory(row *sql.Row) (hn.Story, error) {
	var story hn.Story
	var url sql.NullString
	var kids string
	var readAt, favoritedAt sql.NullInt64
	if err := row.Scan(&story.ID, &story.Title, &url, &story.Score, &story.By,
		&story.Time, &story.Descendants, &kids, &readAt, &favoritedAt); err != nil {
		return hn.Story{}, err
	}
	story.URL = url.String
	story.Kids = decodeKids(kids)
	story.ReadAt = int64PtrFromNull(readAt)
	story.FavoritedAt = int64PtrFromNull(favoritedAt)
	return story, nil
}

func scanStoryWithFetchedAt(row *sql.Row) (hn.Story, int64, error) {
	var story hn.Story
	var url sql.NullString
	var kids string
	var readAt, favoritedAt sql.NullInt64
	var fetchedAt int64
	if err := row.Scan(&story.ID, &story.Title, &url, &story.Score, &story.By,
		&story.Time, &story.Descendants, &kids, &readAt, &favoritedAt, &fetchedAt); err != nil {
		return hn.Story{}, 0, err
	}
	story.URL = url.String
	story.Kids = decodeKids(kids)
	story.ReadAt = int64PtrFromNull(readAt)
	story.FavoritedAt = int64PtrFromNull(favoritedAt)
	return story, fetchedAt, nil
}

// SaveComments atomically upserts the given comments for storyID, preserving
// favorited_at, then purges any stored comment for that story whose id is
// not in the incoming set (orphans left over from a prior fetch). An empty
// incoming list purges every comment for the story.
func (s *Store) SaveComments(ctx context.Context, storyID int64, comments []hn.Comment) error {
	return s.submit(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "begin save comments", err)
		}
		defer tx.Rollback()

		if len(comments) == 0 {
			if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE story_id = ?`, storyID); err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "purge comments", err)
			}
			return tx.Commit()
		}

		now := time.Now().Unix()
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO comments (id, story_id, parent_id, text, by, time, depth, kids, fetched_at, favorited_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				story_id = excluded.story_id,
				parent_id = excluded.parent_id,
				text = excluded.text,
				by = excluded.by,
				time = excluded.time,
				depth = excluded.depth,
				kids = excluded.kids,
				fetched_at = excluded.fetched_at,
				favorited_at = COALESCE(comments.favorited_at, excluded.favorited_at)
		`)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "prepare save comments", err)
		}
		defer stmt.Close()

		keep := make([]any, 0, len(comments)+1)
		keep = append(keep, storyID)
		for _, c := range comments {
			if _, err := stmt.ExecContext(ctx, c.ID, storyID, nil, c.Text, c.By,
				c.Time, c.Depth, encodeKids(c.Kids), now, nullableInt64Ptr(c.FavoritedAt)); err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "upsert comment", err)
			}
			keep = append(keep, c.ID)
		}

		placeholders := placeholderList(len(comments))
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE story_id = ? AND id NOT IN (`+placeholders+`)`,
			keep...,
		); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "purge orphan comments", err)
		}

		return tx.Commit()
	})
}

// GetComments returns a story's comments in no particular order; ordering
// is the DFS flattener's job.
func (s *Store) GetComments(ctx context.Context, storyID int64) ([]hn.Comment, error) {
	var comments []hn.Comment
	err := s.submit(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, commentSelectSQL+" WHERE story_id = ?", storyID)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get comments", err)
		}
		defer rows.Close()

		for rows.Next() {
			c, err := scanComment(rows)
			if err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "scan comment", err)
			}
			comments = append(comments, c)
		}
		if err := rows.Err(); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get comments", err)
		}
		return nil
	})
	return comments, err
}

// GetFreshComments returns a story's comments, or ok=false if there are
// none or they're stale. All comments for a story are fetched together, so
// the first row's fetched_at decides freshness for the whole batch; that
// timestamp is not returned to the caller.
func (s *Store) GetFreshComments(ctx context.Context, storyID int64) ([]hn.Comment, bool, error) {
	var comments []hn.Comment
	var fresh bool
	err := s.submit(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, commentWithFetchedAtSelectSQL+` WHERE story_id = ?`, storyID)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get fresh comments", err)
		}
		defer rows.Close()

		var fetchedAt int64
		for rows.Next() {
			c, fa, err := scanCommentWithFetchedAt(rows)
			if err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "scan comment", err)
			}
			if len(comments) == 0 {
				fetchedAt = fa
			}
			comments = append(comments, c)
		}
		if err := rows.Err(); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get fresh comments", err)
		}
		if len(comments) > 0 && isFresh(fetchedAt) {
			fresh = true
		}
		return nil
	})
	if !fresh {
		comments = nil
	}
	return comments, fresh, err
}

const commentColumnsSQL = `id, story_id, parent_id, text, by, time, depth, kids, favorited_at`
const commentSelectSQL = `SELECT ` + commentColumnsSQL + ` FROM comments`
const commentWithFetchedAtSelectSQL = `SELECT ` + commentColumnsSQL + `, fetched_at FROM comments`

func scanComment(rows *sql.Rows) (hn.Comment, error) {
	var c hn.Comment
	var storyID int64
	var parentID, favoritedAt sql.NullInt64
	var kids string
	if err := rows.Scan(&c.ID, &storyID, &parentID, &c.Text, &c.By, &c.Time, &c.Depth, &kids, &favoritedAt); err != nil {
		return hn.Comment{}, err
	}
	_ = parentID // parent linkage isn't part of the in-memory Comment; kids carries structure instead
	c.Kids = decodeKids(kids)
	c.FavoritedAt = int64PtrFromNull(favoritedAt)
	return c, nil
}

func scanCommentWithFetchedAt(rows *sql.Rows) (hn.Comment, int64, error) {
	var c hn.Comment
	var storyID int64
	var parentID, favoritedAt sql.NullInt64
	var kids string
	var fetchedAt int64
	if err := rows.Scan(&c.ID, &storyID, &parentID, &c.Text, &c.By, &c.Time, &c.Depth, &kids, &favoritedAt, &fetchedAt); err != nil {
		return hn.Comment{}, 0, err
	}
	_ = parentID
	c.Kids = decodeKids(kids)
	c.FavoritedAt = int64PtrFromNull(favoritedAt)
	return c, fetchedAt, nil
}

// SaveFeed upserts feed metadata and rewrites its ordered story list.
func (s *Store) SaveFeed(ctx context.Context, feed hn.Feed, ids []int64) error {
	return s.submit(ctx, func(db *sql.DB) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "begin save feed", err)
		}
		defer tx.Rollback()

		feedType := feedTypeString(feed)
		now := time.Now().Unix()

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO feeds (feed_type, fetched_at) VALUES (?, ?)
			ON CONFLICT(feed_type) DO UPDATE SET fetched_at = excluded.fetched_at
		`, feedType, now); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "upsert feed", err)
		}
		var feedID int64
		row := tx.QueryRowContext(ctx, `SELECT id FROM feeds WHERE feed_type = ?`, feedType)
		if err := row.Scan(&feedID); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "resolve feed id", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM feed_stories WHERE feed_id = ?`, feedID); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "clear feed stories", err)
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO feed_stories (feed_id, position, story_id) VALUES (?, ?, ?)`)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "prepare feed stories", err)
		}
		defer stmt.Close()
		for pos, id := range ids {
			if _, err := stmt.ExecContext(ctx, feedID, pos, id); err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "insert feed story", err)
			}
		}
		return tx.Commit()
	})
}

// GetFeed returns a feed's cached ordered ids and fetch timestamp, or
// ok=false if nothing is cached.
func (s *Store) GetFeed(ctx context.Context, feed hn.Feed) (hn.CachedFeed, bool, error) {
	var cached hn.CachedFeed
	var found bool
	err := s.submit(ctx, func(db *sql.DB) error {
		feedType := feedTypeString(feed)
		var feedID int64
		var fetchedAt int64
		row := db.QueryRowContext(ctx, `SELECT id, fetched_at FROM feeds WHERE feed_type = ?`, feedType)
		if err := row.Scan(&feedID, &fetchedAt); err == sql.ErrNoRows {
			return nil
		} else if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get feed", err)
		}

		rows, err := db.QueryContext(ctx, `SELECT story_id FROM feed_stories WHERE feed_id = ? ORDER BY position`, feedID)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get feed stories", err)
		}
		defer rows.Close()

		var ids []int64
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "scan feed story", err)
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get feed stories", err)
		}
		if len(ids) == 0 {
			return nil
		}

		cached = hn.CachedFeed{Feed: feed, StoryIDs: ids, FetchedAt: fetchedAt}
		found = true
		return nil
	})
	return cached, found, err
}

// GetFreshFeed is GetFeed filtered by the cache TTL.
func (s *Store) GetFreshFeed(ctx context.Context, feed hn.Feed) (hn.CachedFeed, bool, error) {
	cached, found, err := s.GetFeed(ctx, feed)
	if err != nil || !found || !isFresh(cached.FetchedAt) {
		return hn.CachedFeed{}, false, err
	}
	return cached, true, nil
}

// MarkStoryRead sets read_at to now only if it is currently null: first
// open wins.
func (s *Store) MarkStoryRead(ctx context.Context, id int64) error {
	return s.submit(ctx, func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, `UPDATE stories SET read_at = ? WHERE id = ? AND read_at IS NULL`, time.Now().Unix(), id)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "mark story read", err)
		}
		return nil
	})
}

// ToggleStoryFavorite flips a story's favorited_at between null and now,
// returning the new state.
func (s *Store) ToggleStoryFavorite(ctx context.Context, id int64) (bool, error) {
	var nowFavorited bool
	err := s.submit(ctx, func(db *sql.DB) error {
		var favoritedAt sql.NullInt64
		row := db.QueryRowContext(ctx, `SELECT favorited_at FROM stories WHERE id = ?`, id)
		if err := row.Scan(&favoritedAt); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "read story favorite state", err)
		}
		if favoritedAt.Valid {
			_, err := db.ExecContext(ctx, `UPDATE stories SET favorited_at = NULL WHERE id = ?`, id)
			return wrapStorageErr(err, "clear story favorite")
		}
		_, err := db.ExecContext(ctx, `UPDATE stories SET favorited_at = ? WHERE id = ?`, time.Now().Unix(), id)
		nowFavorited = true
		return wrapStorageErr(err, "set story favorite")
	})
	return nowFavorited, err
}

// ToggleCommentFavorite flips a comment's favorited_at between null and
// now, returning the new state.
func (s *Store) ToggleCommentFavorite(ctx context.Context, id int64) (bool, error) {
	var nowFavorited bool
	err := s.submit(ctx, func(db *sql.DB) error {
		var favoritedAt sql.NullInt64
		row := db.QueryRowContext(ctx, `SELECT favorited_at FROM comments WHERE id = ?`, id)
		if err := row.Scan(&favoritedAt); err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "read comment favorite state", err)
		}
		if favoritedAt.Valid {
			_, err := db.ExecContext(ctx, `UPDATE comments SET favorited_at = NULL WHERE id = ?`, id)
			return wrapStorageErr(err, "clear comment favorite")
		}
		_, err := db.ExecContext(ctx, `UPDATE comments SET favorited_at = ? WHERE id = ?`, time.Now().Unix(), id)
		nowFavorited = true
		return wrapStorageErr(err, "set comment favorite")
	})
	return nowFavorited, err
}

// GetFavoritedStories returns every story with a non-null favorited_at,
// most recently favorited first.
func (s *Store) GetFavoritedStories(ctx context.Context) ([]hn.Story, error) {
	var stories []hn.Story
	err := s.submit(ctx, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, storySelectSQL+` WHERE favorited_at IS NOT NULL ORDER BY favorited_at DESC`)
		if err != nil {
			return hnerrors.New(hnerrors.CodeStorage, "get favorited stories", err)
		}
		defer rows.Close()

		for rows.Next() {
			var story hn.Story
			var url sql.NullString
			var kids string
			var readAt, favoritedAt sql.NullInt64
			if err := rows.Scan(&story.ID, &story.Title, &url, &story.Score, &story.By,
				&story.Time, &story.Descendants, &kids, &readAt, &favoritedAt); err != nil {
				return hnerrors.New(hnerrors.CodeStorage, "scan favorited story", err)
			}
			story.URL = url.String
			story.Kids = decodeKids(kids)
			story.ReadAt = int64PtrFromNull(readAt)
			story.FavoritedAt = int64PtrFromNull(favoritedAt)
			stories = append(stories, story)
		}
		return rows.Err()
	})
	return stories, err
}

func feedTypeString(f hn.Feed) string {
	switch f {
	case hn.FeedTop:
		return "top"
	case hn.FeedNew:
		return "new"
	case hn.FeedBest:
		return "best"
	case hn.FeedAsk:
		return "ask"
	case hn.FeedShow:
		return "show"
	case hn.FeedJobs:
		return "jobs"
	default:
		return "top"
	}
}

func placeholderList(n int) string {
	if n == 0 {
		return ""
	}
	out := make([]byte, 0, n*2-1)
	for i := 0; i < n; i++ {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, '?')
	}
	return string(out)
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt64Ptr(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func int64PtrFromNull(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func wrapStorageErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	return hnerrors.New(hnerrors.CodeStorage, msg, err)
}
