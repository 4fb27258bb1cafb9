// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the feed-board server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-feed-board/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the feed-board
// server. Implementations are responsible for serialisation, session cookie
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetSessionCookie stores the session cookie that will be attached to all
	// subsequent requests. Implementations call it themselves after a
	// successful Signup or Login; it is exported so a persisted session can
	// be restored at startup.
	SetSessionCookie(cookie *http.Cookie)

	// SessionCookie returns the session cookie currently held by the adapter,
	// or nil if the client is not logged in.
	SessionCookie() *http.Cookie

	// Signup submits the account-creation form. The returned FormState
	// carries field errors on validation or conflict failures; the session
	// cookie is captured automatically when the state reports success.
	Signup(ctx context.Context, email, username, password, bio string) (models.FormState, error)

	// Login submits the sign-in form. The session cookie is captured
	// automatically when the state reports success.
	Login(ctx context.Context, email, password string) (models.FormState, error)

	// Session asks the server who the held cookie belongs to. A missing or
	// invalid cookie yields a logged-out SessionData, not an error.
	Session(ctx context.Context) (models.SessionData, error)

	// Logout invalidates the session server-side and drops the held cookie.
	Logout(ctx context.Context) error

	// Profile fetches the authenticated user's account record.
	Profile(ctx context.Context) (models.User, error)

	// Feed fetches one page of the feed, newest first.
	Feed(ctx context.Context, page int) (models.FeedResponse, error)

	// Tweet fetches a single post with the caller's like flag and replies.
	Tweet(ctx context.Context, tweetID int64) (models.TweetDetailResponse, error)

	// CreateTweet submits a new post.
	CreateTweet(ctx context.Context, text string) (models.FormState, error)

	// ToggleLike flips the caller's like on a post and returns the server's
	// resulting truth.
	ToggleLike(ctx context.Context, tweetID int64) (models.LikeState, error)

	// PostResponse submits a reply to a post.
	PostResponse(ctx context.Context, tweetID int64, text string) (models.FormState, error)
}
