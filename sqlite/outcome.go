package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/linkscan"
)

// Compile-time interface verification.
var _ linkscan.OutcomeCache = (*OutcomeCache)(nil)

// Prefilter answers definite misses before the database is queried.
type Prefilter interface {
	Add(key string)
	Test(key string) bool
}

// OutcomeCache implements linkscan.OutcomeCache using SQLite. Entries older
// than the TTL are misses. Failed outcomes are never stored.
type OutcomeCache struct {
	db     *DB
	ttl    time.Duration
	filter Prefilter
	now    func() time.Time
}

// CacheOption configures an OutcomeCache.
type CacheOption func(*OutcomeCache)

// WithPrefilter puts a membership filter in front of lookups. It is loaded
// with the keys already stored.
func WithPrefilter(f Prefilter) CacheOption {
	return func(c *OutcomeCache) {
		c.filter = f
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *OutcomeCache) {
		c.now = now
	}
}

// NewOutcomeCache creates an OutcomeCache over an open DB.
func NewOutcomeCache(ctx context.Context, db *DB, ttl time.Duration, opts ...CacheOption) (*OutcomeCache, error) {
	c := &OutcomeCache{db: db, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.filter != nil {
		if err := c.loadKeys(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *OutcomeCache) loadKeys(ctx context.Context) error {
	rows, err := c.db.QueryContext(ctx, `SELECT key FROM outcomes`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return err
		}
		c.filter.Add(key)
	}
	return rows.Err()
}

// FindOutcome returns the stored outcome for url if it is younger than the TTL.
func (c *OutcomeCache) FindOutcome(ctx context.Context, url string) (linkscan.Outcome, bool, error) {
	key := CacheKey(url)
	if c.filter != nil && !c.filter.Test(key) {
		return linkscan.Outcome{}, false, nil
	}

	var storedURL, severity, message, checkedAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT url, severity, message, checked_at
		FROM outcomes
		WHERE key = ?
	`, key).Scan(&storedURL, &severity, &message, &checkedAt)
	if err == sql.ErrNoRows {
		return linkscan.Outcome{}, false, nil
	}
	if err != nil {
		return linkscan.Outcome{}, false, err
	}
	if storedURL != url {
		return linkscan.Outcome{}, false, nil
	}

	t, err := parseRFC3339(checkedAt, "checked_at")
	if err != nil {
		return linkscan.Outcome{}, false, err
	}
	if c.now().Sub(t) > c.ttl {
		return linkscan.Outcome{}, false, nil
	}

	sev, err := linkscan.ParseSeverity(severity)
	if err != nil {
		return linkscan.Outcome{}, false, err
	}
	return linkscan.Outcome{Severity: sev, Message: message}, true, nil
}

// SaveOutcome stores the outcome for url, replacing any previous entry.
// Failed outcomes are ignored so that broken links are rechecked every run.
func (c *OutcomeCache) SaveOutcome(ctx context.Context, url string, outcome linkscan.Outcome) error {
	if outcome.IsFailure() {
		return nil
	}

	key := CacheKey(url)
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO outcomes (key, url, severity, message, checked_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			url = excluded.url,
			severity = excluded.severity,
			message = excluded.message,
			checked_at = excluded.checked_at
	`, key, url, outcome.Severity.String(), outcome.Message, c.now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if c.filter != nil {
		c.filter.Add(key)
	}
	return nil
}

// DeleteExpired removes entries older than the TTL and returns how many
// were removed.
func (c *OutcomeCache) DeleteExpired(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.ttl).UTC().Format(time.RFC3339)
	result, err := c.db.ExecContext(ctx, `DELETE FROM outcomes WHERE checked_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
