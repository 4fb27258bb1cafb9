package service

import (
	"context"

	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
)

type AuthService interface {
	// Signup runs the full account-creation pipeline and returns the created
	// user together with the form outcome. The user is the zero value unless
	// the state reports success.
	Signup(ctx context.Context, input validators.SignupInput) (models.User, models.FormState)

	// Login verifies credentials and returns the authenticated user together
	// with the form outcome. A missing account and a wrong password produce
	// byte-identical failure states.
	Login(ctx context.Context, input validators.LoginInput) (models.User, models.FormState)

	// GetProfile returns the account record of an authenticated user.
	GetProfile(ctx context.Context, userID int64) (models.User, error)
}

type FeedService interface {
	CreateTweet(ctx context.Context, author models.Author, text string) (models.Tweet, models.FormState)
	ListTweets(ctx context.Context, page int) (models.FeedResponse, error)
	GetTweet(ctx context.Context, viewerID, tweetID int64) (models.TweetDetailResponse, error)
	ToggleLike(ctx context.Context, userID, tweetID int64) models.LikeState
	CreateResponse(ctx context.Context, author models.Author, tweetID int64, text string) (models.Response, models.FormState)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
