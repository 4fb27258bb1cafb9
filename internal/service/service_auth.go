package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/crypto"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
)

// authService is the concrete implementation of AuthService.
// It runs the signup and login pipelines: field validation, uniqueness
// checks, password hashing and verification. Session cookies are the
// handler's concern; this layer only decides whether the caller gets one.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator applies the field-level rules before any storage access.
	validator *validators.CredentialValidator

	// hasher derives and verifies password digests. The service never sees
	// which scheme is behind the interface.
	hasher crypto.Hasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, validator and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, validator *validators.CredentialValidator, hasher crypto.Hasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		hasher:         hasher,
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// Pipeline: echo submitted values (password blanked) → field validation →
// email uniqueness → username uniqueness → hash password → create user.
// Uniqueness pre-checks run sequentially and the first collision wins, so a
// submission taking both an existing email and an existing username reports
// only the email. The database unique constraints remain authoritative: a
// race that slips past the pre-check surfaces as the same conflict message
// when the INSERT fails.
func (a *authService) Signup(ctx context.Context, input validators.SignupInput) (models.User, models.FormState) {
	log := logger.FromContext(ctx)

	state := models.NewFormState(map[string]string{
		models.FieldEmail:    input.Email,
		models.FieldUsername: input.Username,
		models.FieldBio:      input.Bio,
	})

	if errs := a.validator.ValidateSignup(input); !errs.Ok() {
		state.Errors = errs
		return models.User{}, state
	}

	// email first, so a double collision reports only the email
	if _, err := a.userRepository.FindUserByEmail(ctx, input.Email); err == nil {
		return models.User{}, state.WithFieldError(models.FieldEmail, validators.MsgEmailTaken)
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("email uniqueness check failed")
		state.Message = msgSystemError
		return models.User{}, state
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, input.Username); err == nil {
		return models.User{}, state.WithFieldError(models.FieldUsername, validators.MsgUsernameTaken)
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("username uniqueness check failed")
		state.Message = msgSystemError
		return models.User{}, state
	}

	digest, err := a.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		state.Message = msgSystemError
		return models.User{}, state
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: digest,
		Bio:          input.Bio,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, state.WithFieldError(models.FieldEmail, validators.MsgEmailTaken)
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, state.WithFieldError(models.FieldUsername, validators.MsgUsernameTaken)
		default:
			log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
			state.Message = msgSystemError
			return models.User{}, state
		}
	}

	state.Success = true
	state.Message = "account created successfully"
	return createdUser, state
}

// Login authenticates an existing user.
//
// A missing account and a wrong password both answer with the same generic
// message, so the response does not disclose which emails have accounts.
func (a *authService) Login(ctx context.Context, input validators.LoginInput) (models.User, models.FormState) {
	log := logger.FromContext(ctx)

	state := models.NewFormState(map[string]string{
		models.FieldEmail: input.Email,
	})

	if errs := a.validator.ValidateLogin(input); !errs.Ok() {
		state.Errors = errs
		return models.User{}, state
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			state.Message = validators.MsgInvalidCredentials
			return models.User{}, state
		}

		log.Err(err).Msg("user search by email failed")
		state.Message = msgSystemError
		return models.User{}, state
	}

	if !a.hasher.Verify(input.Password, foundUser.PasswordHash) {
		state.Message = validators.MsgInvalidCredentials
		return models.User{}, state
	}

	state.Success = true
	state.Message = "logged in successfully"
	return foundUser, state
}

// GetProfile returns the account record for userID.
//
// Returns ErrUserNotFound when the session points at an account that no
// longer exists, or a wrapped storage error otherwise.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Int64("userID", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
