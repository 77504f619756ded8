package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/partyapatil/Ai-blog-frontend/internal/article"
	_ "modernc.org/sqlite"
)

// Cache keeps the last article list fetched from the backend so it can be
// shown offline. It is a snapshot: every sync replaces it wholesale.
type Cache struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	c := &Cache{writeDB: writeDB}
	// Schema must exist before a read-only handle can see it
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}
	c.readDB = readDB
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			position   INTEGER PRIMARY KEY,
			id         TEXT NOT NULL,
			title      TEXT NOT NULL,
			details    TEXT NOT NULL DEFAULT '',
			content    TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_articles_id ON articles(id);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	return errors.Join(errs...)
}

// ReplaceArticles swaps the snapshot for articles, keeping their order, and
// records the sync time.
func (c *Cache) ReplaceArticles(articles []article.Article) error {
	tx, err := c.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO articles (position, id, title, details, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range articles {
		if _, err := stmt.Exec(i, a.ID, a.Title, a.Details, a.Content, a.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("storing article %s: %w", a.ID, err)
		}
	}

	if err := setMeta(tx, "last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

// Clear empties the snapshot. The sync time is kept: an empty list after a
// delete is still an up-to-date list.
func (c *Cache) Clear() error {
	tx, err := c.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing snapshot: %w", err)
	}
	if err := setMeta(tx, "last_sync", time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return tx.Commit()
}

func (c *Cache) GetArticles() ([]article.Article, error) {
	rows, err := c.readDB.Query(`
		SELECT id, title, details, content, created_at
		FROM articles ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	articles := []article.Article{}
	for rows.Next() {
		var a article.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Details, &a.Content, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticle returns the cached article with id, or nil when absent.
func (c *Cache) GetArticle(id string) (*article.Article, error) {
	var a article.Article
	err := c.readDB.QueryRow(`
		SELECT id, title, details, content, created_at
		FROM articles WHERE id = ? ORDER BY position LIMIT 1
	`, id).Scan(&a.ID, &a.Title, &a.Details, &a.Content, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying article %s: %w", id, err)
	}
	return &a, nil
}

// LastSync reports when the snapshot was last written. ok is false if it
// never was.
func (c *Cache) LastSync() (t time.Time, ok bool) {
	var value string
	if err := c.readDB.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync'`).Scan(&value); err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Stats returns the number of cached articles and the database file size.
func (c *Cache) Stats(dbPath string) (count int, size int64, err error) {
	if err := c.readDB.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting articles: %w", err)
	}
	fi, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}
	return count, fi.Size(), nil
}

func setMeta(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing meta %s: %w", key, err)
	}
	return nil
}
