package store

import (
	"context"

	"github.com/MKhiriev/go-feed-board/models"
)

// FeedCache is the client-side snapshot of server feed state. The terminal
// client renders from the cache and overlays its speculative entries on top,
// so the feed stays readable between refreshes and across restarts.
type FeedCache interface {
	UpsertTweets(ctx context.Context, tweets []models.Tweet) error
	ListCachedFeed(ctx context.Context, limit, offset int) ([]models.Tweet, error)
	GetCachedTweet(ctx context.Context, tweetID int64) (models.Tweet, error)
	UpsertResponses(ctx context.Context, tweetID int64, responses []models.Response) error
	ListCachedResponses(ctx context.Context, tweetID int64) ([]models.Response, error)
	Close() error
}
