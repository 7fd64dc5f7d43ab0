// Package storage is the durable local cache: stories, comment threads,
// feed snapshots, and user state (read/favorite flags), backed by a single
// embedded sqlite database with schema migrations.
//
// A single worker goroutine owns the database handle; every operation is
// submitted as a closure over a buffered channel and runs serialized on
// that goroutine, the Go equivalent of the single-owner-thread-plus-
// reply-channel model a command-queue-based cache typically uses.
package storage

import (
	"context"
	"database/sql"
	"net/url"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure-Go sqlite driver

	hnerrors "hntui/internal/errors"
)

const cacheTTL = 24 * time.Hour

// Store is a handle to the cache worker. The zero value is not usable;
// construct with Open or OpenInMemory.
type Store struct {
	cmds   chan func(*sql.DB)
	db     *sql.DB
	closed chan struct{}
}

// Open opens (creating if necessary) the sqlite database at path, running
// any pending schema migrations before returning.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." || dir == string(filepath.Separator) {
		return nil, hnerrors.New(hnerrors.CodeNoDBPathParent, "db path has no usable parent directory", nil)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, hnerrors.New(hnerrors.CodeIO, "create db directory", err)
	}
	return open(buildDSN(path))
}

// OpenInMemory opens a private in-memory database. Used by tests.
func OpenInMemory() (*Store, error) {
	return open("file::memory:")
}

func buildDSN(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	u.RawQuery = q.Encode()
	return u.String()
}

func open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, hnerrors.New(hnerrors.CodeStorage, "open database", err)
	}
	// One connection: sqlite serializes writers regardless, and for an
	// in-memory database this is what keeps data alive across uses
	// instead of each checkout seeing a fresh, empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, hnerrors.New(hnerrors.CodeStorage, "ping database", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		cmds:   make(chan func(*sql.DB), 64),
		db:     db,
		closed: make(chan struct{}),
	}
	go s.run()
	return s, nil
}

func (s *Store) run() {
	for cmd := range s.cmds {
		cmd(s.db)
	}
	close(s.closed)
}

// Close stops accepting new work, waits for in-flight commands to finish,
// and closes the underlying database handle.
func (s *Store) Close() error {
	close(s.cmds)
	<-s.closed
	return s.db.Close()
}

// submit runs fn on the worker goroutine and waits for its result.
func (s *Store) submit(ctx context.Context, fn func(*sql.DB) error) error {
	reply := make(chan error, 1)
	select {
	case s.cmds <- func(db *sql.DB) { reply <- fn(db) }:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isFresh(fetchedAt int64) bool {
	return time.Now().Unix()-fetchedAt < int64(cacheTTL.Seconds())
}
