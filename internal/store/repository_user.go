package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - unique_violation (23505) on users_email_key → [ErrEmailAlreadyExists].
//   - unique_violation (23505) on users_username_key → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash, user.Bio)

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Email, &user.Username, &user.PasswordHash, &user.Bio, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case "users_username_key":
				return models.User{}, ErrUsernameAlreadyExists
			default:
				// users_email_key
				return models.User{}, ErrEmailAlreadyExists
			}
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user record matching the given email.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByUsername retrieves the user record matching the given username.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByID retrieves the user record matching the given identifier.
// Returns [ErrNoUserWasFound] when no such account exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.Username, &foundUser.PasswordHash, &foundUser.Bio, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
