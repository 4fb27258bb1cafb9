package store

import (
	"context"

	"github.com/MKhiriev/go-feed-board/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	ListTweets(ctx context.Context, limit, offset int) ([]models.Tweet, error)
	CountTweets(ctx context.Context) (int, error)
	GetTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error)
}

type LikeRepository interface {
	InsertLike(ctx context.Context, userID, tweetID int64) error
	DeleteLike(ctx context.Context, userID, tweetID int64) error
	IsLiked(ctx context.Context, userID, tweetID int64) (bool, error)
	CountLikes(ctx context.Context, tweetID int64) (int, error)
}

type ResponseRepository interface {
	CreateResponse(ctx context.Context, response models.Response) (models.Response, error)
	ListResponsesByTweet(ctx context.Context, tweetID int64) ([]models.Response, error)
}
