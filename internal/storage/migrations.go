package storage

import (
	"database/sql"
	"fmt"
	"time"

	hnerrors "hntui/internal/errors"
)

type migration struct {
	version int64
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE stories (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	url TEXT,
	score INTEGER NOT NULL,
	by TEXT NOT NULL,
	time INTEGER NOT NULL,
	descendants INTEGER NOT NULL,
	kids TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	read_at INTEGER,
	favorited_at INTEGER
);

CREATE TABLE comments (
	id INTEGER PRIMARY KEY,
	story_id INTEGER NOT NULL,
	parent_id INTEGER,
	text TEXT NOT NULL,
	by TEXT NOT NULL,
	time INTEGER NOT NULL,
	depth INTEGER NOT NULL,
	kids TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	favorited_at INTEGER
);
CREATE INDEX idx_comments_story ON comments(story_id);

CREATE TABLE feeds (
	id INTEGER PRIMARY KEY,
	feed_type TEXT NOT NULL UNIQUE,
	fetched_at INTEGER NOT NULL
);

CREATE TABLE feed_stories (
	feed_id INTEGER NOT NULL REFERENCES feeds(id),
	position INTEGER NOT NULL,
	story_id INTEGER NOT NULL
);
CREATE INDEX idx_feed_stories_feed ON feed_stories(feed_id);
`,
	},
}

// runMigrations brings the schema up to the latest version. Safe to call
// on every open: already-applied versions are skipped.
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _schema (
		version INTEGER PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return hnerrors.New(hnerrors.CodeMigration, "create _schema table", err)
	}

	var current int64
	row := db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM _schema`)
	if err := row.Scan(&current); err != nil {
		return hnerrors.New(hnerrors.CodeMigration, "read schema version", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return hnerrors.New(hnerrors.CodeMigration, fmt.Sprintf("begin migration %d", m.version), err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return hnerrors.New(hnerrors.CodeMigration, fmt.Sprintf("apply migration %d", m.version), err)
		}
		if _, err := tx.Exec(`INSERT INTO _schema (version, applied_at) VALUES (?, ?)`, m.version, time.Now().Unix()); err != nil {
			tx.Rollback()
			return hnerrors.New(hnerrors.CodeMigration, fmt.Sprintf("record migration %d", m.version), err)
		}
		if err := tx.Commit(); err != nil {
			return hnerrors.New(hnerrors.CodeMigration, fmt.Sprintf("commit migration %d", m.version), err)
		}
	}
	return nil
}
