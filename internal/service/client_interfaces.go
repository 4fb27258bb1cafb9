package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-feed-board/models"
)

// ClientAuthService defines the client-side contract for account management.
// Implementations talk to the server through the adapter; the session cookie
// lives inside the adapter.
type ClientAuthService interface {
	// Signup submits the account-creation form. On success the adapter holds
	// a fresh session cookie.
	Signup(ctx context.Context, email, username, password, bio string) (models.FormState, error)

	// Login submits the sign-in form. On success the adapter holds a fresh
	// session cookie.
	Login(ctx context.Context, email, password string) (models.FormState, error)

	// Session reports who the current cookie belongs to. A missing or
	// invalid cookie yields a logged-out SessionData, not an error.
	Session(ctx context.Context) (models.SessionData, error)

	// Logout invalidates the session and drops the cookie.
	Logout(ctx context.Context) error

	// Profile fetches the logged-in user's account record.
	Profile(ctx context.Context) (models.User, error)
}

// ClientFeedService is the client's view of the feed. Reads serve the local
// state (speculative overlays included); writes apply speculatively first
// and reconcile against the server's answer.
type ClientFeedService interface {
	// LoadFeed fetches one feed page from the server and writes it through
	// to the cache. When the server is unreachable it falls back to the
	// cached copy and reports stale=true.
	LoadFeed(ctx context.Context, page int) (feed models.FeedResponse, stale bool, err error)

	// LoadTweet fetches one post with replies, resets the post's local
	// entity state to the server truth and writes through to the cache.
	// Falls back to the cache when the server is unreachable.
	LoadTweet(ctx context.Context, tweetID int64) (detail models.TweetDetailResponse, stale bool, err error)

	// TweetView returns the current local view of a loaded post,
	// speculative changes included. ok is false if the post has not been
	// loaded in this session.
	TweetView(tweetID int64) (models.TweetDetailResponse, bool)

	// CreateTweet submits a new post. Posting is not speculative: the
	// composer blocks until the server answers.
	CreateTweet(ctx context.Context, text string) (models.FormState, error)

	// ToggleLike flips the like on a loaded post speculatively and
	// reconciles with the server's truth. A second toggle while one is in
	// flight returns ErrMutationInFlight and changes nothing.
	ToggleLike(ctx context.Context, tweetID int64) error

	// PostResponse appends a reply speculatively under a temporary ID and
	// reconciles with the server's truth.
	PostResponse(ctx context.Context, tweetID int64, text string) (models.FormState, error)
}

// ClientRefreshJob is a background worker that periodically re-fetches the
// first feed page so the cache stays warm while the client is open.
type ClientRefreshJob interface {
	// Start launches the background refresh goroutine. Any previously
	// running job is stopped before the new one begins. If interval is zero
	// or negative it defaults to 1 minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
