package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
	"github.com/jackc/pgerrcode"
)

// responseRepository is the PostgreSQL-backed implementation of
// [ResponseRepository].
type responseRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResponseRepository constructs a [ResponseRepository] backed by the
// provided database connection and logger.
func NewResponseRepository(db *DB, logger *logger.Logger) ResponseRepository {
	logger.Debug().Msg("creating response repository")
	return &responseRepository{
		db:     db,
		logger: logger,
	}
}

// CreateResponse persists a new reply and returns it with server-assigned
// fields (ResponseID, CreatedAt). The author identity is carried over from
// the input. Returns [ErrTweetNotFound] when the parent post does not exist.
func (r *responseRepository) CreateResponse(ctx context.Context, response models.Response) (models.Response, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createResponse, response.TweetID, response.UserID, response.Text)

	if err := row.Scan(&response.ResponseID, &response.TweetID, &response.UserID, &response.Text, &response.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Response{}, ErrTweetNotFound
		}

		log.Err(err).Str("func", "*responseRepository.CreateResponse").Msg("error: scanning error")
		return models.Response{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	response.User = models.Author{UserID: response.UserID, Username: response.User.Username}

	return response, nil
}

// ListResponsesByTweet returns all replies of a post, newest first, each
// joined with its author's public identity.
func (r *responseRepository) ListResponsesByTweet(ctx context.Context, tweetID int64) ([]models.Response, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listResponsesByTweet, tweetID)
	if err != nil {
		log.Err(err).Str("func", "*responseRepository.ListResponsesByTweet").Msg("error executing responses query")
		return nil, errors.Join(ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	responses := make([]models.Response, 0)
	for rows.Next() {
		var resp models.Response
		if err = rows.Scan(&resp.ResponseID, &resp.TweetID, &resp.UserID, &resp.Text, &resp.CreatedAt, &resp.User.Username); err != nil {
			log.Err(err).Str("func", "*responseRepository.ListResponsesByTweet").Msg("error: scanning error")
			return nil, errors.Join(ErrScanningRows, err)
		}
		resp.User.UserID = resp.UserID
		responses = append(responses, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Join(ErrScanningRows, err)
	}

	return responses, nil
}
