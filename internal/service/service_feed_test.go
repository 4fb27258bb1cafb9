// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: store repositories
// ─────────────────────────────────────────────

type mockTweetRepository struct {
	createFn func(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	listFn   func(ctx context.Context, limit, offset int) ([]models.Tweet, error)
	countFn  func(ctx context.Context) (int, error)
	getFn    func(ctx context.Context, tweetID int64) (models.Tweet, error)
}

func (m *mockTweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tweet)
	}
	tweet.TweetID = 1
	return tweet, nil
}

func (m *mockTweetRepository) ListTweets(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	if m.listFn != nil {
		return m.listFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockTweetRepository) CountTweets(ctx context.Context) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}

func (m *mockTweetRepository) GetTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tweetID)
	}
	return models.Tweet{}, store.ErrTweetNotFound
}

type mockLikeRepository struct {
	insertFn  func(ctx context.Context, userID, tweetID int64) error
	deleteFn  func(ctx context.Context, userID, tweetID int64) error
	isLikedFn func(ctx context.Context, userID, tweetID int64) (bool, error)
	countFn   func(ctx context.Context, tweetID int64) (int, error)
}

func (m *mockLikeRepository) InsertLike(ctx context.Context, userID, tweetID int64) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, userID, tweetID)
	}
	return nil
}

func (m *mockLikeRepository) DeleteLike(ctx context.Context, userID, tweetID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, tweetID)
	}
	return nil
}

func (m *mockLikeRepository) IsLiked(ctx context.Context, userID, tweetID int64) (bool, error) {
	if m.isLikedFn != nil {
		return m.isLikedFn(ctx, userID, tweetID)
	}
	return false, nil
}

func (m *mockLikeRepository) CountLikes(ctx context.Context, tweetID int64) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, tweetID)
	}
	return 0, nil
}

type mockResponseRepository struct {
	createFn func(ctx context.Context, response models.Response) (models.Response, error)
	listFn   func(ctx context.Context, tweetID int64) ([]models.Response, error)
}

func (m *mockResponseRepository) CreateResponse(ctx context.Context, response models.Response) (models.Response, error) {
	if m.createFn != nil {
		return m.createFn(ctx, response)
	}
	response.ResponseID = 1
	return response, nil
}

func (m *mockResponseRepository) ListResponsesByTweet(ctx context.Context, tweetID int64) ([]models.Response, error) {
	if m.listFn != nil {
		return m.listFn(ctx, tweetID)
	}
	return nil, nil
}

func newTestFeedService(tweets *mockTweetRepository, likes *mockLikeRepository, responses *mockResponseRepository) FeedService {
	if tweets == nil {
		tweets = &mockTweetRepository{}
	}
	if likes == nil {
		likes = &mockLikeRepository{}
	}
	if responses == nil {
		responses = &mockResponseRepository{}
	}
	storages := &store.Storages{
		TweetRepository:    tweets,
		LikeRepository:     likes,
		ResponseRepository: responses,
	}
	return NewFeedService(storages, validators.NewFeedValidator(), logger.Nop())
}

// ─────────────────────────────────────────────
// CreateTweet
// ─────────────────────────────────────────────

func TestCreateTweet_Service_Success(t *testing.T) {
	svc := newTestFeedService(nil, nil, nil)

	tweet, state := svc.CreateTweet(context.Background(), models.Author{UserID: 7, Username: "johnny"}, "hello feed")

	require.True(t, state.Success)
	assert.Equal(t, int64(1), tweet.TweetID)
	assert.Equal(t, int64(7), tweet.UserID)
}

func TestCreateTweet_Service_EmptyText(t *testing.T) {
	touched := false
	tweets := &mockTweetRepository{
		createFn: func(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
			touched = true
			return tweet, nil
		},
	}
	svc := newTestFeedService(tweets, nil, nil)

	_, state := svc.CreateTweet(context.Background(), models.Author{UserID: 7}, "")

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgTweetRequired, state.Errors[models.FieldTweet])
	assert.False(t, touched)
}

func TestCreateTweet_Service_TooLong(t *testing.T) {
	svc := newTestFeedService(nil, nil, nil)

	_, state := svc.CreateTweet(context.Background(), models.Author{UserID: 7}, strings.Repeat("a", validators.MaxPostLength+1))

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgTweetTooLong, state.Errors[models.FieldTweet])
}

// ─────────────────────────────────────────────
// ListTweets
// ─────────────────────────────────────────────

func TestListTweets_Service_PaginationMath(t *testing.T) {
	tweets := &mockTweetRepository{
		countFn: func(ctx context.Context) (int, error) { return 23, nil },
		listFn: func(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
			assert.Equal(t, FeedPageSize, limit)
			assert.Equal(t, 20, offset)
			return []models.Tweet{{TweetID: 3}, {TweetID: 2}, {TweetID: 1}}, nil
		},
	}
	svc := newTestFeedService(tweets, nil, nil)

	feed, err := svc.ListTweets(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, feed.Tweets, 3)
	assert.Equal(t, 3, feed.Pagination.Page)
	assert.Equal(t, 3, feed.Pagination.TotalPages)
	assert.True(t, feed.Pagination.IsLastPage)
	assert.Equal(t, 23, feed.Pagination.TotalTweets)
}

func TestListTweets_Service_MiddlePageIsNotLast(t *testing.T) {
	tweets := &mockTweetRepository{
		countFn: func(ctx context.Context) (int, error) { return 23, nil },
	}
	svc := newTestFeedService(tweets, nil, nil)

	feed, err := svc.ListTweets(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, feed.Pagination.IsLastPage)
}

func TestListTweets_Service_PageBeyondEndIsEmptyNotError(t *testing.T) {
	tweets := &mockTweetRepository{
		countFn: func(ctx context.Context) (int, error) { return 5, nil },
		listFn: func(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
			return []models.Tweet{}, nil
		},
	}
	svc := newTestFeedService(tweets, nil, nil)

	feed, err := svc.ListTweets(context.Background(), 40)
	require.NoError(t, err)
	assert.Empty(t, feed.Tweets)
	assert.True(t, feed.Pagination.IsLastPage)
}

// ─────────────────────────────────────────────
// GetTweet
// ─────────────────────────────────────────────

func TestGetTweet_Service_Success(t *testing.T) {
	now := time.Now()
	tweets := &mockTweetRepository{
		getFn: func(ctx context.Context, tweetID int64) (models.Tweet, error) {
			return models.Tweet{TweetID: tweetID, Text: "a post", CreatedAt: now, LikeCount: 2}, nil
		},
	}
	likes := &mockLikeRepository{
		isLikedFn: func(ctx context.Context, userID, tweetID int64) (bool, error) { return true, nil },
	}
	responses := &mockResponseRepository{
		listFn: func(ctx context.Context, tweetID int64) ([]models.Response, error) {
			return []models.Response{{ResponseID: 11, Text: "newer"}, {ResponseID: 10, Text: "older"}}, nil
		},
	}
	svc := newTestFeedService(tweets, likes, responses)

	detail, err := svc.GetTweet(context.Background(), 7, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), detail.Tweet.TweetID)
	assert.True(t, detail.IsLiked)
	require.Len(t, detail.Responses, 2)
	assert.Equal(t, int64(11), detail.Responses[0].ResponseID)
}

func TestGetTweet_Service_NotFound(t *testing.T) {
	svc := newTestFeedService(nil, nil, nil)

	_, err := svc.GetTweet(context.Background(), 7, 404)
	assert.True(t, errors.Is(err, ErrTweetNotFound))
}

// ─────────────────────────────────────────────
// ToggleLike
// ─────────────────────────────────────────────

func TestToggleLike_Service_LikeWhenNotLiked(t *testing.T) {
	inserted := false
	likes := &mockLikeRepository{
		isLikedFn: func(ctx context.Context, userID, tweetID int64) (bool, error) { return false, nil },
		insertFn: func(ctx context.Context, userID, tweetID int64) error {
			inserted = true
			return nil
		},
		countFn: func(ctx context.Context, tweetID int64) (int, error) { return 4, nil },
	}
	svc := newTestFeedService(nil, likes, nil)

	state := svc.ToggleLike(context.Background(), 7, 5)

	require.True(t, state.Success)
	assert.True(t, inserted)
	assert.True(t, state.Liked)
	assert.Equal(t, 4, state.LikeCount)
}

func TestToggleLike_Service_UnlikeWhenLiked(t *testing.T) {
	deleted := false
	likes := &mockLikeRepository{
		isLikedFn: func(ctx context.Context, userID, tweetID int64) (bool, error) { return true, nil },
		deleteFn: func(ctx context.Context, userID, tweetID int64) error {
			deleted = true
			return nil
		},
		countFn: func(ctx context.Context, tweetID int64) (int, error) { return 3, nil },
	}
	svc := newTestFeedService(nil, likes, nil)

	state := svc.ToggleLike(context.Background(), 7, 5)

	require.True(t, state.Success)
	assert.True(t, deleted)
	assert.False(t, state.Liked)
	assert.Equal(t, 3, state.LikeCount)
}

// A concurrent session may have produced the requested state already; the
// duplicate-insert and missing-delete sentinels are success, not failure.
func TestToggleLike_Service_ConcurrentToggleIsSuccess(t *testing.T) {
	likes := &mockLikeRepository{
		isLikedFn: func(ctx context.Context, userID, tweetID int64) (bool, error) { return false, nil },
		insertFn: func(ctx context.Context, userID, tweetID int64) error {
			return store.ErrAlreadyLiked
		},
		countFn: func(ctx context.Context, tweetID int64) (int, error) { return 1, nil },
	}
	svc := newTestFeedService(nil, likes, nil)

	state := svc.ToggleLike(context.Background(), 7, 5)
	assert.True(t, state.Success)
	assert.True(t, state.Liked)
}

func TestToggleLike_Service_MissingTweet(t *testing.T) {
	likes := &mockLikeRepository{
		insertFn: func(ctx context.Context, userID, tweetID int64) error {
			return store.ErrTweetNotFound
		},
	}
	svc := newTestFeedService(nil, likes, nil)

	state := svc.ToggleLike(context.Background(), 7, 404)
	assert.False(t, state.Success)
	assert.NotEmpty(t, state.Error)
}

// ─────────────────────────────────────────────
// CreateResponse
// ─────────────────────────────────────────────

func TestCreateResponse_Service_Success(t *testing.T) {
	svc := newTestFeedService(nil, nil, nil)

	resp, state := svc.CreateResponse(context.Background(), models.Author{UserID: 7, Username: "johnny"}, 5, "nice post")

	require.True(t, state.Success)
	assert.Equal(t, int64(1), resp.ResponseID)
	assert.Equal(t, int64(5), resp.TweetID)
}

func TestCreateResponse_Service_EmptyText(t *testing.T) {
	svc := newTestFeedService(nil, nil, nil)

	_, state := svc.CreateResponse(context.Background(), models.Author{UserID: 7}, 5, "")

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgResponseRequired, state.Errors[models.FieldText])
}

func TestCreateResponse_Service_MissingTweet(t *testing.T) {
	responses := &mockResponseRepository{
		createFn: func(ctx context.Context, response models.Response) (models.Response, error) {
			return models.Response{}, store.ErrTweetNotFound
		},
	}
	svc := newTestFeedService(nil, nil, responses)

	_, state := svc.CreateResponse(context.Background(), models.Author{UserID: 7}, 404, "hello")

	assert.False(t, state.Success)
	assert.Equal(t, "tweet not found", state.Message)
}
