package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/scrapeview"
	"github.com/google/uuid"
)

// DefaultTTL is how long a cached page stays fresh.
const DefaultTTL = 15 * time.Minute

// Compile-time interface verification.
var _ scrapeview.PageCache = (*PageCache)(nil)

// PageCache implements scrapeview.PageCache using SQLite.
type PageCache struct {
	db  *DB
	ttl time.Duration
	now func() time.Time
}

// PageCacheOption configures a PageCache.
type PageCacheOption func(*PageCache)

// WithTTL sets how long entries are served. Zero or less keeps entries forever.
func WithTTL(ttl time.Duration) PageCacheOption {
	return func(c *PageCache) {
		c.ttl = ttl
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) PageCacheOption {
	return func(c *PageCache) {
		c.now = now
	}
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB, opts ...PageCacheOption) *PageCache {
	c := &PageCache{
		db:  db,
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// hashURL returns the hex xxHash of a URL.
func hashURL(url string) string {
	return strconv.FormatUint(xxhash.Sum64String(url), 16)
}

// FindPage returns the cached result for url.
func (c *PageCache) FindPage(ctx context.Context, url string) (*scrapeview.PageResult, error) {
	var raw, createdAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT result, created_at FROM pages WHERE url_hash = ? AND url = ?
	`, hashURL(url), url).Scan(&raw, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, scrapeview.Errorf(scrapeview.ENOTFOUND, "page not cached")
	}
	if err != nil {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if c.expired(created) {
		return nil, scrapeview.Errorf(scrapeview.ENOTFOUND, "page cache entry expired")
	}

	var result scrapeview.PageResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("failed to decode cached page: %w", err)
	}
	return &result, nil
}

// SavePage stores result under its URL, replacing any previous entry.
func (c *PageCache) SavePage(ctx context.Context, result *scrapeview.PageResult) error {
	if result == nil || result.URL == "" {
		return scrapeview.Errorf(scrapeview.EINVALID, "page url required")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode page: %w", err)
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO pages (id, url_hash, url, result, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			url = excluded.url,
			result = excluded.result,
			created_at = excluded.created_at
	`, uuid.New().String(), hashURL(result.URL), result.URL, string(raw),
		c.now().UTC().Format(time.RFC3339Nano))
	return err
}

// DeleteExpired removes entries older than the TTL and reports how many went.
func (c *PageCache) DeleteExpired(ctx context.Context) (int64, error) {
	if c.ttl <= 0 {
		return 0, nil
	}
	rows, err := c.db.QueryContext(ctx, `SELECT url_hash, created_at FROM pages`)
	if err != nil {
		return 0, err
	}

	var stale []string
	for rows.Next() {
		var hash, createdAt string
		if err := rows.Scan(&hash, &createdAt); err != nil {
			rows.Close()
			return 0, err
		}
		created, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil || c.expired(created) {
			stale = append(stale, hash)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, err
	}
	rows.Close()

	var n int64
	for _, hash := range stale {
		res, err := c.db.ExecContext(ctx, `DELETE FROM pages WHERE url_hash = ?`, hash)
		if err != nil {
			return n, err
		}
		affected, _ := res.RowsAffected()
		n += affected
	}
	return n, nil
}

func (c *PageCache) expired(created time.Time) bool {
	return c.ttl > 0 && c.now().Sub(created) > c.ttl
}
