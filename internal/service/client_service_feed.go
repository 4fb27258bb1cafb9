// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-board/internal/adapter"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/utils"
	"github.com/MKhiriev/go-feed-board/models"
)

// clientFeedService implements ClientFeedService. Every loaded post gets an
// EntityState holding its detail view; like toggles and replies mutate that
// state speculatively and reconcile against the server. Confirmed state is
// written through to the SQLite cache so the client has something to show
// before the first successful fetch.
type clientFeedService struct {
	adapter adapter.ServerAdapter
	cache   store.FeedCache
	logger  *logger.Logger
	tempIDs *utils.UUIDGenerator

	mu     sync.Mutex
	tweets map[int64]*EntityState[models.TweetDetailResponse]
}

func NewClientFeedService(serverAdapter adapter.ServerAdapter, cache store.FeedCache, logger *logger.Logger) ClientFeedService {
	return &clientFeedService{
		adapter: serverAdapter,
		cache:   cache,
		logger:  logger,
		tempIDs: utils.NewUUIDGenerator(),
		tweets:  make(map[int64]*EntityState[models.TweetDetailResponse]),
	}
}

// entityState returns the state holder of a post, creating an empty one on
// first access.
func (f *clientFeedService) entityState(tweetID int64) *EntityState[models.TweetDetailResponse] {
	f.mu.Lock()
	defer f.mu.Unlock()

	state, ok := f.tweets[tweetID]
	if !ok {
		state = NewEntityState(models.TweetDetailResponse{Tweet: models.Tweet{TweetID: tweetID}})
		f.tweets[tweetID] = state
	}
	return state
}

func (f *clientFeedService) LoadFeed(ctx context.Context, page int) (models.FeedResponse, bool, error) {
	feed, err := f.adapter.Feed(ctx, page)
	if err != nil {
		if mapped := mapAdapterError(err); mapped == ErrNotLoggedIn {
			return models.FeedResponse{}, false, mapped
		}

		// server unreachable: serve the cached copy
		f.logger.Err(err).Int("page", page).Msg("feed fetch failed, serving cache")
		cached, cacheErr := f.cache.ListCachedFeed(ctx, FeedPageSize, (page-1)*FeedPageSize)
		if cacheErr != nil {
			return models.FeedResponse{}, false, fmt.Errorf("feed fetch failed and cache read failed: %w", err)
		}
		return models.FeedResponse{
			Tweets:     cached,
			Pagination: models.Pagination{Page: page, IsLastPage: len(cached) < FeedPageSize},
		}, true, nil
	}

	if cacheErr := f.cache.UpsertTweets(ctx, feed.Tweets); cacheErr != nil {
		f.logger.Err(cacheErr).Msg("feed cache write failed")
	}

	return feed, false, nil
}

func (f *clientFeedService) LoadTweet(ctx context.Context, tweetID int64) (models.TweetDetailResponse, bool, error) {
	detail, err := f.adapter.Tweet(ctx, tweetID)
	if err != nil {
		if mapped := mapAdapterError(err); mapped == ErrNotLoggedIn || mapped == ErrTweetNotFound {
			return models.TweetDetailResponse{}, false, mapped
		}

		f.logger.Err(err).Int64("tweetID", tweetID).Msg("tweet fetch failed, serving cache")
		cachedTweet, cacheErr := f.cache.GetCachedTweet(ctx, tweetID)
		if cacheErr != nil {
			return models.TweetDetailResponse{}, false, fmt.Errorf("tweet fetch failed and cache read failed: %w", err)
		}
		cachedResponses, cacheErr := f.cache.ListCachedResponses(ctx, tweetID)
		if cacheErr != nil {
			f.logger.Err(cacheErr).Int64("tweetID", tweetID).Msg("cached responses read failed")
		}

		stale := models.TweetDetailResponse{Tweet: cachedTweet, Responses: cachedResponses}
		f.entityState(tweetID).Reset(stale)
		return stale, true, nil
	}

	f.entityState(tweetID).Reset(detail)
	f.writeThrough(ctx, detail)

	return detail, false, nil
}

// writeThrough persists confirmed server state into the cache.
func (f *clientFeedService) writeThrough(ctx context.Context, detail models.TweetDetailResponse) {
	if err := f.cache.UpsertTweets(ctx, []models.Tweet{detail.Tweet}); err != nil {
		f.logger.Err(err).Int64("tweetID", detail.Tweet.TweetID).Msg("tweet cache write failed")
	}
	if err := f.cache.UpsertResponses(ctx, detail.Tweet.TweetID, confirmedResponses(detail.Responses)); err != nil {
		f.logger.Err(err).Int64("tweetID", detail.Tweet.TweetID).Msg("responses cache write failed")
	}
}

// confirmedResponses filters out speculative entries; only server-assigned
// rows may enter the cache.
func confirmedResponses(responses []models.Response) []models.Response {
	confirmed := make([]models.Response, 0, len(responses))
	for _, r := range responses {
		if r.TempID == "" {
			confirmed = append(confirmed, r)
		}
	}
	return confirmed
}

func (f *clientFeedService) TweetView(tweetID int64) (models.TweetDetailResponse, bool) {
	f.mu.Lock()
	state, ok := f.tweets[tweetID]
	f.mu.Unlock()
	if !ok {
		return models.TweetDetailResponse{}, false
	}
	return state.View(), true
}

func (f *clientFeedService) CreateTweet(ctx context.Context, text string) (models.FormState, error) {
	state, err := f.adapter.CreateTweet(ctx, text)
	if err != nil {
		return models.FormState{}, mapAdapterError(err)
	}

	return state, nil
}

func (f *clientFeedService) ToggleLike(ctx context.Context, tweetID int64) error {
	state := f.entityState(tweetID)

	err := state.Mutate(ctx,
		func(view models.TweetDetailResponse) models.TweetDetailResponse {
			view.IsLiked = !view.IsLiked
			if view.IsLiked {
				view.Tweet.LikeCount++
			} else {
				view.Tweet.LikeCount--
			}
			return view
		},
		func(ctx context.Context) (models.TweetDetailResponse, error) {
			likeState, err := f.adapter.ToggleLike(ctx, tweetID)
			if err != nil {
				return models.TweetDetailResponse{}, mapAdapterError(err)
			}
			if !likeState.Success {
				return models.TweetDetailResponse{}, fmt.Errorf("like rejected: %s", likeState.Error)
			}

			// graft the server's truth onto the confirmed state; speculative
			// entries of concurrent mutations are replayed separately
			view := state.Confirmed()
			view.IsLiked = likeState.Liked
			view.Tweet.LikeCount = likeState.LikeCount
			return view, nil
		})
	if err != nil {
		return err
	}

	f.writeThrough(ctx, state.View())
	return nil
}

func (f *clientFeedService) PostResponse(ctx context.Context, tweetID int64, text string) (models.FormState, error) {
	state := f.entityState(tweetID)

	var formState models.FormState
	speculative := models.Response{
		TempID:    f.tempIDs.Generate(),
		TweetID:   tweetID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	err := state.MutateAdditive(ctx,
		func(view models.TweetDetailResponse) models.TweetDetailResponse {
			view.Responses = append([]models.Response{speculative}, view.Responses...)
			view.Tweet.ResponseCount++
			return view
		},
		func(ctx context.Context) (models.TweetDetailResponse, error) {
			submitted, err := f.adapter.PostResponse(ctx, tweetID, text)
			if err != nil {
				return models.TweetDetailResponse{}, mapAdapterError(err)
			}
			formState = submitted
			if !submitted.Success {
				return models.TweetDetailResponse{}, fmt.Errorf("reply rejected: %s", firstMessage(submitted))
			}

			// the action reports success only; re-fetch for the reply's
			// server-assigned identity
			detail, err := f.adapter.Tweet(ctx, tweetID)
			if err != nil {
				f.logger.Err(err).Int64("tweetID", tweetID).Msg("post-reply refresh failed, keeping speculative entry")
				view := state.Confirmed()
				view.Responses = append([]models.Response{speculative}, view.Responses...)
				view.Tweet.ResponseCount++
				return view, nil
			}
			return detail, nil
		})
	if err != nil {
		if formState.Success || formState.Message != "" || len(formState.Errors) > 0 {
			// the server answered with a structured rejection
			return formState, nil
		}
		return models.FormState{}, err
	}

	f.writeThrough(ctx, state.View())
	return formState, nil
}

// firstMessage extracts a human-readable failure reason from a form state.
func firstMessage(state models.FormState) string {
	if state.Message != "" {
		return state.Message
	}
	for _, msg := range state.Errors {
		return msg
	}
	return "submission failed"
}
