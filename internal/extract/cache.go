// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cacheFile = "extract.db"

// Cache wraps an Extractor and remembers successful extractions in a
// SQLite database keyed by the SHA-256 of the input bytes and the backend
// name. Failures are never cached so a fixed backend is retried.
type Cache struct {
	db    *sql.DB
	inner Extractor
}

// NewCache opens or creates dir/extract.db in front of inner.
func NewCache(dir string, inner Extractor) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, cacheFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	c := &Cache{db: db, inner: inner}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) createSchema() error {
	_, err := c.db.Exec(`CREATE TABLE IF NOT EXISTS extractions (
		sha256 TEXT NOT NULL,
		backend TEXT NOT NULL,
		text TEXT NOT NULL,
		extracted_at TEXT NOT NULL,
		PRIMARY KEY (sha256, backend)
	)`)
	return err
}

// Name reports the wrapped backend's name.
func (c *Cache) Name() string { return c.inner.Name() }

// Extract returns cached text when present, otherwise delegates and stores
// a non-empty result. Cache read and write errors are logged and bypassed.
func (c *Cache) Extract(ctx context.Context, name string, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])

	var text string
	err := c.db.QueryRowContext(ctx,
		`SELECT text FROM extractions WHERE sha256 = ? AND backend = ?`, key, c.inner.Name(),
	).Scan(&text)
	switch {
	case err == nil:
		slog.Debug("extraction cache hit", "name", name, "sha256", key[:12])
		return text, nil
	case !errors.Is(err, sql.ErrNoRows):
		slog.Warn("extraction cache read failed", "name", name, "error", err)
	}

	text, err = c.inner.Extract(ctx, name, data)
	if err != nil {
		return "", err
	}
	if text == "" {
		return text, nil
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO extractions (sha256, backend, text, extracted_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(sha256, backend) DO UPDATE SET text=excluded.text, extracted_at=excluded.extracted_at`,
		key, c.inner.Name(), text, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		slog.Warn("extraction cache write failed", "name", name, "error", err)
	}
	return text, nil
}

// Len returns the number of cached extractions.
func (c *Cache) Len(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM extractions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cache entries: %w", err)
	}
	return n, nil
}
