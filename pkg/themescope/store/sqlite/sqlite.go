// Package sqlite implements store.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/proplens/themescope/pkg/themescope/corpus"
	"github.com/proplens/themescope/pkg/themescope/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite snapshot database with WAL mode enabled, creating
// the schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS accounts (
	username TEXT PRIMARY KEY,
	full_name TEXT,
	followers INTEGER DEFAULT 0,
	following INTEGER DEFAULT 0,
	country TEXT,
	external_url TEXT,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL,
	position INTEGER NOT NULL,
	upload_date TEXT,
	caption TEXT,
	hashtags TEXT,
	likes INTEGER DEFAULT 0,
	comments INTEGER DEFAULT 0,
	video_views INTEGER DEFAULT 0,
	url TEXT,
	FOREIGN KEY(username) REFERENCES accounts(username) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_posts_username ON posts(username);

CREATE TABLE IF NOT EXISTS snapshot_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveCorpus replaces the whole snapshot in one transaction.
func (s *sqliteStore) SaveCorpus(ctx context.Context, data corpus.Corpus) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return err
	}

	for i, acct := range data {
		if acct.Username == "" {
			continue
		}
		if err := insertAccount(ctx, tx, acct, i); err != nil {
			return err
		}
	}

	if err := setMeta(ctx, tx, "saved_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

// LoadCorpus returns the stored snapshot in saved order.
func (s *sqliteStore) LoadCorpus(ctx context.Context) (corpus.Corpus, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT username, full_name, followers, following, country, external_url
FROM accounts ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var data corpus.Corpus
	for rows.Next() {
		var acct corpus.Account
		if err := rows.Scan(&acct.Username, &acct.FullName, &acct.Followers, &acct.Following, &acct.Country, &acct.ExternalURL); err != nil {
			return nil, err
		}
		data = append(data, acct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range data {
		posts, err := s.loadPosts(ctx, data[i].Username)
		if err != nil {
			return nil, err
		}
		data[i].Posts = posts
	}
	if data == nil {
		data = corpus.Corpus{}
	}
	return data, nil
}

// SnapshotTime returns the last save time.
func (s *sqliteStore) SnapshotTime(ctx context.Context) (time.Time, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key='saved_at'`).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// UpsertAccount inserts or replaces one account and its posts.
func (s *sqliteStore) UpsertAccount(ctx context.Context, acct corpus.Account) error {
	if acct.Username == "" {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var position int
	err = tx.QueryRowContext(ctx, `SELECT position FROM accounts WHERE username=?`, acct.Username).Scan(&position)
	if err == sql.ErrNoRows {
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position)+1, 0) FROM accounts`).Scan(&position); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE username=?`, acct.Username); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE username=?`, acct.Username); err != nil {
		return err
	}
	if err := insertAccount(ctx, tx, acct, position); err != nil {
		return err
	}
	if err := setMeta(ctx, tx, "saved_at", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

// GetAccount returns one account by username.
func (s *sqliteStore) GetAccount(ctx context.Context, username string) (corpus.Account, bool, error) {
	var acct corpus.Account
	err := s.db.QueryRowContext(ctx, `
SELECT username, full_name, followers, following, country, external_url
FROM accounts WHERE username=?`, username).
		Scan(&acct.Username, &acct.FullName, &acct.Followers, &acct.Following, &acct.Country, &acct.ExternalURL)
	if err == sql.ErrNoRows {
		return corpus.Account{}, false, nil
	}
	if err != nil {
		return corpus.Account{}, false, err
	}

	posts, err := s.loadPosts(ctx, username)
	if err != nil {
		return corpus.Account{}, false, err
	}
	acct.Posts = posts
	return acct, true, nil
}

// DeleteAccount removes an account and its posts.
func (s *sqliteStore) DeleteAccount(ctx context.Context, username string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM posts WHERE username=?`, username); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE username=?`, username); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *sqliteStore) loadPosts(ctx context.Context, username string) ([]corpus.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT upload_date, caption, hashtags, likes, comments, video_views, url
FROM posts WHERE username=? ORDER BY position`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []corpus.Post
	for rows.Next() {
		var p corpus.Post
		var hashtags string
		if err := rows.Scan(&p.UploadDate, &p.Caption, &hashtags, &p.Likes, &p.Comments, &p.VideoViews, &p.URL); err != nil {
			return nil, err
		}
		if hashtags != "" {
			if err := json.Unmarshal([]byte(hashtags), &p.Hashtags); err != nil {
				return nil, err
			}
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func insertAccount(ctx context.Context, tx *sql.Tx, acct corpus.Account, position int) error {
	if _, err := tx.ExecContext(ctx, `
INSERT INTO accounts (username, full_name, followers, following, country, external_url, position)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		acct.Username, acct.FullName, acct.Followers, acct.Following, acct.Country, acct.ExternalURL, position); err != nil {
		return err
	}

	if len(acct.Posts) == 0 {
		return nil
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO posts (username, position, upload_date, caption, hashtags, likes, comments, video_views, url)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, p := range acct.Posts {
		hashtags := ""
		if len(p.Hashtags) > 0 {
			raw, err := json.Marshal(p.Hashtags)
			if err != nil {
				return err
			}
			hashtags = string(raw)
		}
		if _, err := stmt.ExecContext(ctx, acct.Username, i, p.UploadDate, p.Caption, hashtags, p.Likes, p.Comments, p.VideoViews, p.URL); err != nil {
			return err
		}
	}
	return nil
}

func setMeta(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	return err
}
