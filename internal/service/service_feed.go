package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
)

// FeedPageSize is the fixed number of posts per feed page.
const FeedPageSize = 10

// feedService is the concrete implementation of FeedService. It composes
// the tweet, like and response repositories into the operations the feed
// endpoints need.
type feedService struct {
	tweetRepository    store.TweetRepository
	likeRepository     store.LikeRepository
	responseRepository store.ResponseRepository

	validator *validators.FeedValidator

	logger *logger.Logger
}

// NewFeedService constructs a FeedService over the given repositories.
func NewFeedService(storages *store.Storages, validator *validators.FeedValidator, logger *logger.Logger) FeedService {
	return &feedService{
		tweetRepository:    storages.TweetRepository,
		likeRepository:     storages.LikeRepository,
		responseRepository: storages.ResponseRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateTweet validates and persists a new post by author.
func (f *feedService) CreateTweet(ctx context.Context, author models.Author, text string) (models.Tweet, models.FormState) {
	log := logger.FromContext(ctx)

	state := models.NewFormState(map[string]string{
		models.FieldTweet: text,
	})

	if errs := f.validator.ValidateTweet(text); !errs.Ok() {
		state.Errors = errs
		return models.Tweet{}, state
	}

	created, err := f.tweetRepository.CreateTweet(ctx, models.Tweet{
		UserID: author.UserID,
		Text:   text,
		User:   author,
	})
	if err != nil {
		log.Err(err).Int64("userID", author.UserID).Msg("tweet creation ended with error")
		state.Message = msgSystemError
		return models.Tweet{}, state
	}

	state.Success = true
	state.Message = "tweet posted"
	return created, state
}

// ListTweets returns one page of the feed with pagination metadata.
// Pages beyond the end of the feed return an empty list, not an error.
func (f *feedService) ListTweets(ctx context.Context, page int) (models.FeedResponse, error) {
	log := logger.FromContext(ctx)

	total, err := f.tweetRepository.CountTweets(ctx)
	if err != nil {
		log.Err(err).Msg("counting tweets failed")
		return models.FeedResponse{}, fmt.Errorf("counting tweets failed: %w", err)
	}

	offset := (page - 1) * FeedPageSize
	tweets, err := f.tweetRepository.ListTweets(ctx, FeedPageSize, offset)
	if err != nil {
		log.Err(err).Int("page", page).Msg("listing tweets failed")
		return models.FeedResponse{}, fmt.Errorf("listing tweets failed: %w", err)
	}

	totalPages := (total + FeedPageSize - 1) / FeedPageSize

	return models.FeedResponse{
		Tweets: tweets,
		Pagination: models.Pagination{
			Page:        page,
			TotalPages:  totalPages,
			IsLastPage:  page >= totalPages,
			TotalTweets: total,
		},
	}, nil
}

// GetTweet returns one post with the viewer's like flag and all replies.
// Returns ErrTweetNotFound when the post does not exist.
func (f *feedService) GetTweet(ctx context.Context, viewerID, tweetID int64) (models.TweetDetailResponse, error) {
	log := logger.FromContext(ctx)

	tweet, err := f.tweetRepository.GetTweetByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			return models.TweetDetailResponse{}, ErrTweetNotFound
		}

		log.Err(err).Int64("tweetID", tweetID).Msg("tweet lookup failed")
		return models.TweetDetailResponse{}, fmt.Errorf("tweet lookup failed: %w", err)
	}

	liked, err := f.likeRepository.IsLiked(ctx, viewerID, tweetID)
	if err != nil {
		log.Err(err).Int64("tweetID", tweetID).Msg("like lookup failed")
		return models.TweetDetailResponse{}, fmt.Errorf("like lookup failed: %w", err)
	}

	responses, err := f.responseRepository.ListResponsesByTweet(ctx, tweetID)
	if err != nil {
		log.Err(err).Int64("tweetID", tweetID).Msg("listing responses failed")
		return models.TweetDetailResponse{}, fmt.Errorf("listing responses failed: %w", err)
	}

	return models.TweetDetailResponse{
		Tweet:     tweet,
		IsLiked:   liked,
		Responses: responses,
	}, nil
}

// ToggleLike flips the caller's like on a post and reports the resulting
// server truth. A duplicate insert or a missing row during delete means a
// concurrent toggle already produced the requested state, so both are
// treated as success.
func (f *feedService) ToggleLike(ctx context.Context, userID, tweetID int64) models.LikeState {
	log := logger.FromContext(ctx)

	wasLiked, err := f.likeRepository.IsLiked(ctx, userID, tweetID)
	if err != nil {
		log.Err(err).Int64("tweetID", tweetID).Msg("like lookup failed")
		return models.LikeState{Error: msgSystemError}
	}

	if wasLiked {
		err = f.likeRepository.DeleteLike(ctx, userID, tweetID)
		if err != nil && !errors.Is(err, store.ErrLikeNotFound) {
			log.Err(err).Int64("tweetID", tweetID).Msg("deleting like failed")
			return models.LikeState{Error: msgSystemError}
		}
	} else {
		err = f.likeRepository.InsertLike(ctx, userID, tweetID)
		switch {
		case errors.Is(err, store.ErrTweetNotFound):
			return models.LikeState{Error: "tweet not found"}
		case err != nil && !errors.Is(err, store.ErrAlreadyLiked):
			log.Err(err).Int64("tweetID", tweetID).Msg("inserting like failed")
			return models.LikeState{Error: msgSystemError}
		}
	}

	count, err := f.likeRepository.CountLikes(ctx, tweetID)
	if err != nil {
		log.Err(err).Int64("tweetID", tweetID).Msg("counting likes failed")
		return models.LikeState{Error: msgSystemError}
	}

	return models.LikeState{
		Success:   true,
		Liked:     !wasLiked,
		LikeCount: count,
	}
}

// CreateResponse validates and persists a reply to a post.
func (f *feedService) CreateResponse(ctx context.Context, author models.Author, tweetID int64, text string) (models.Response, models.FormState) {
	log := logger.FromContext(ctx)

	state := models.NewFormState(map[string]string{
		models.FieldText: text,
	})

	if errs := f.validator.ValidateResponse(text); !errs.Ok() {
		state.Errors = errs
		return models.Response{}, state
	}

	created, err := f.responseRepository.CreateResponse(ctx, models.Response{
		TweetID: tweetID,
		UserID:  author.UserID,
		Text:    text,
		User:    author,
	})
	if err != nil {
		if errors.Is(err, store.ErrTweetNotFound) {
			state.Message = "tweet not found"
			return models.Response{}, state
		}

		log.Err(err).Int64("tweetID", tweetID).Msg("response creation ended with error")
		state.Message = msgSystemError
		return models.Response{}, state
	}

	state.Success = true
	state.Message = "reply posted"
	return created, state
}
