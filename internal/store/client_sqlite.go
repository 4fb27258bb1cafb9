package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-feed-board/models"
)

// ErrCachedTweetNotFound is returned when the cache has no row for a
// requested tweet.
var ErrCachedTweetNotFound = errors.New("cached tweet not found")

// sqliteFeedCache implements [FeedCache] on top of a local SQLite file.
// Writes replace whatever the cache held before: the server copy is always
// authoritative and the cache never merges.
type sqliteFeedCache struct {
	db *sql.DB
}

// NewFeedCache opens (or creates) the SQLite cache at dsn and ensures the
// schema exists. Pass ":memory:" for an ephemeral cache.
func NewFeedCache(dsn string) (FeedCache, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open feed cache: %w", err)
	}

	if _, err = db.Exec(createCacheSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create feed cache schema: %w", err)
	}

	return &sqliteFeedCache{db: db}, nil
}

// UpsertTweets stores one refreshed page of the feed. Rows already present
// keep their primary key and take the fresh text and counters.
func (c *sqliteFeedCache) UpsertTweets(ctx context.Context, tweets []models.Tweet) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}

	for _, t := range tweets {
		if _, err = tx.ExecContext(ctx, upsertCachedTweet,
			t.TweetID, t.UserID, t.User.Username, t.Text, t.LikeCount, t.ResponseCount, t.CreatedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert cached tweet %d: %w", t.TweetID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}

	return nil
}

// ListCachedFeed returns cached posts newest first.
func (c *sqliteFeedCache) ListCachedFeed(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	rows, err := c.db.QueryContext(ctx, listCachedFeed, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query cached feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tweets := make([]models.Tweet, 0, limit)
	for rows.Next() {
		var t models.Tweet
		if err = rows.Scan(&t.TweetID, &t.UserID, &t.User.Username, &t.Text, &t.LikeCount, &t.ResponseCount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cached tweet: %w", err)
		}
		t.User.UserID = t.UserID
		tweets = append(tweets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("scan cached feed: %w", err)
	}

	return tweets, nil
}

// GetCachedTweet returns a single cached post.
func (c *sqliteFeedCache) GetCachedTweet(ctx context.Context, tweetID int64) (models.Tweet, error) {
	var t models.Tweet
	row := c.db.QueryRowContext(ctx, getCachedTweet, tweetID)
	if err := row.Scan(&t.TweetID, &t.UserID, &t.User.Username, &t.Text, &t.LikeCount, &t.ResponseCount, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrCachedTweetNotFound
		}
		return models.Tweet{}, fmt.Errorf("scan cached tweet: %w", err)
	}
	t.User.UserID = t.UserID

	return t, nil
}

// UpsertResponses stores the refreshed reply list of one post. Speculative
// replies are never written here; only server-confirmed rows carry a
// ResponseID and the cache is keyed on it.
func (c *sqliteFeedCache) UpsertResponses(ctx context.Context, tweetID int64, responses []models.Response) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache transaction: %w", err)
	}

	for _, resp := range responses {
		if _, err = tx.ExecContext(ctx, upsertCachedResponse,
			resp.ResponseID, tweetID, resp.UserID, resp.User.Username, resp.Text, resp.CreatedAt,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert cached response %d: %w", resp.ResponseID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit cache transaction: %w", err)
	}

	return nil
}

// ListCachedResponses returns the cached replies of a post, newest first.
func (c *sqliteFeedCache) ListCachedResponses(ctx context.Context, tweetID int64) ([]models.Response, error) {
	rows, err := c.db.QueryContext(ctx, listCachedResponses, tweetID)
	if err != nil {
		return nil, fmt.Errorf("query cached responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	responses := make([]models.Response, 0)
	for rows.Next() {
		var resp models.Response
		if err = rows.Scan(&resp.ResponseID, &resp.TweetID, &resp.UserID, &resp.User.Username, &resp.Text, &resp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cached response: %w", err)
		}
		resp.User.UserID = resp.UserID
		responses = append(responses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("scan cached responses: %w", err)
	}

	return responses, nil
}

// Close releases the underlying database handle.
func (c *sqliteFeedCache) Close() error {
	return c.db.Close()
}
