package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/jackc/pgerrcode"
)

// likeRepository is the PostgreSQL-backed implementation of [LikeRepository].
// The likes table carries a unique (user_id, tweet_id) constraint, so insert
// and delete are idempotency-checked by the database rather than by
// read-then-write races.
type likeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLikeRepository constructs a [LikeRepository] backed by the provided
// database connection and logger.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		db:     db,
		logger: logger,
	}
}

// InsertLike records that userID likes tweetID.
//
// Error handling:
//   - unique_violation (23505) → [ErrAlreadyLiked].
//   - foreign_key_violation (23503) → [ErrTweetNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *likeRepository) InsertLike(ctx context.Context, userID, tweetID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertLike, userID, tweetID); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyLiked
		case pgerrcode.ForeignKeyViolation:
			return ErrTweetNotFound
		default:
			log.Err(err).Str("func", "*likeRepository.InsertLike").Msg("error inserting like")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// DeleteLike removes the like of userID on tweetID.
// Returns [ErrLikeNotFound] when no row was deleted.
func (r *likeRepository) DeleteLike(ctx context.Context, userID, tweetID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteLike, userID, tweetID)
	if err != nil {
		log.Err(err).Str("func", "*likeRepository.DeleteLike").Msg("error deleting like")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrLikeNotFound
	}

	return nil
}

// IsLiked reports whether userID currently likes tweetID.
func (r *likeRepository) IsLiked(ctx context.Context, userID, tweetID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var liked bool
	if err := r.db.QueryRowContext(ctx, isLiked, userID, tweetID).Scan(&liked); err != nil {
		log.Err(err).Str("func", "*likeRepository.IsLiked").Msg("error querying like")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return liked, nil
}

// CountLikes returns the current like count of tweetID.
func (r *likeRepository) CountLikes(ctx context.Context, tweetID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countLikes, tweetID).Scan(&count); err != nil {
		log.Err(err).Str("func", "*likeRepository.CountLikes").Msg("error counting likes")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
