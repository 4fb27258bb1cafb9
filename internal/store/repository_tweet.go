package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
)

// tweetRepository is the PostgreSQL-backed implementation of
// [TweetRepository]. Feed reads join tweets with their author row and count
// likes and replies at query time, so the feed never serves stale counters.
type tweetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTweetRepository constructs a [TweetRepository] backed by the provided
// database connection and logger.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTweet persists a new post and returns it with server-assigned fields
// (TweetID, CreatedAt). Counters start at zero and the author identity is
// carried over from the input.
func (r *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createTweet, tweet.UserID, tweet.Text)

	if err := row.Scan(&tweet.TweetID, &tweet.UserID, &tweet.Text, &tweet.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Msg("error: scanning error")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	tweet.User = models.Author{UserID: tweet.UserID, Username: tweet.User.Username}

	return tweet, nil
}

// ListTweets returns one page of the feed, newest first. The tweet_id
// tiebreak keeps the ordering total when two posts share a timestamp.
func (r *tweetRepository) ListTweets(ctx context.Context, limit, offset int) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTweetsQuery(limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.ListTweets").Msg("error building feed query")
		return nil, errors.Join(ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.ListTweets").Msg("error executing feed query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	tweets := make([]models.Tweet, 0, limit)
	for rows.Next() {
		var t models.Tweet
		if err = rows.Scan(&t.TweetID, &t.UserID, &t.Text, &t.CreatedAt, &t.User.Username, &t.LikeCount, &t.ResponseCount); err != nil {
			log.Err(err).Str("func", "*tweetRepository.ListTweets").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		t.User.UserID = t.UserID
		tweets = append(tweets, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return tweets, nil
}

// CountTweets returns the total number of posts, used for page math.
func (r *tweetRepository) CountTweets(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var total int
	if err := r.db.QueryRowContext(ctx, countTweets).Scan(&total); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CountTweets").Msg("error counting tweets")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}

// GetTweetByID returns a single post with its author and counters.
// Returns [ErrTweetNotFound] when the post does not exist.
func (r *tweetRepository) GetTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTweetQuery(tweetID)
	if err != nil {
		log.Err(err).Str("func", "*tweetRepository.GetTweetByID").Msg("error building tweet query")
		return models.Tweet{}, errors.Join(ErrBuildingSQLQuery, err)
	}

	var t models.Tweet
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&t.TweetID, &t.UserID, &t.Text, &t.CreatedAt, &t.User.Username, &t.LikeCount, &t.ResponseCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrTweetNotFound
		}

		log.Err(err).Str("func", "*tweetRepository.GetTweetByID").Msg("error: scanning error")
		return models.Tweet{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	t.User.UserID = t.UserID

	return t, nil
}
