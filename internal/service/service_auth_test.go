// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-feed-board/internal/crypto"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn         func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn    func(ctx context.Context, email string) (models.User, error)
	findByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findByIDFn       func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if m.findByUsernameFn != nil {
		return m.findByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(
		repo,
		validators.NewCredentialValidator("@zod.com"),
		crypto.NewHMACHasher("test-key"),
		logger.Nop(),
	)
}

func validSignupInput() validators.SignupInput {
	return validators.SignupInput{
		Email:    "john@zod.com",
		Username: "johnny",
		Password: "abc1234567",
		Bio:      "hi there",
	}
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	user, state := svc.Signup(context.Background(), validSignupInput())

	require.True(t, state.Success)
	assert.Empty(t, state.Errors)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "johnny", user.Username)
}

func TestSignup_PasswordNeverEchoed(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	in := validSignupInput()
	in.Password = "short" // force a validation failure

	_, state := svc.Signup(context.Background(), in)

	assert.False(t, state.Success)
	_, echoed := state.Values[models.FieldPassword]
	assert.False(t, echoed, "password must never appear in echoed values")
	assert.Equal(t, in.Email, state.Values[models.FieldEmail])
}

func TestSignup_ValidationFailureSkipsStorage(t *testing.T) {
	storageTouched := false
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			storageTouched = true
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(repo)

	in := validSignupInput()
	in.Username = "abc"

	_, state := svc.Signup(context.Background(), in)

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgUsernameTooShort, state.Errors[models.FieldUsername])
	assert.False(t, storageTouched, "validation failure must not reach the repository")
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 9, Email: email}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Signup(context.Background(), validSignupInput())

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgEmailTaken, state.Errors[models.FieldEmail])
}

// A submission colliding on both identities reports only the email: the
// checks run sequentially and the first collision wins.
func TestSignup_EmailCollisionReportedBeforeUsername(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 9}, nil
		},
		findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 8}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Signup(context.Background(), validSignupInput())

	assert.Equal(t, validators.MsgEmailTaken, state.Errors[models.FieldEmail])
	_, usernameReported := state.Errors[models.FieldUsername]
	assert.False(t, usernameReported)
}

func TestSignup_UsernameTaken(t *testing.T) {
	repo := &mockUserRepository{
		findByUsernameFn: func(ctx context.Context, username string) (models.User, error) {
			return models.User{UserID: 8}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Signup(context.Background(), validSignupInput())

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgUsernameTaken, state.Errors[models.FieldUsername])
}

// The pre-check is best-effort; a race that slips past it surfaces as the
// DB constraint sentinel and must map to the same conflict message.
func TestSignup_CreateRaceMapsToConflictMessage(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Signup(context.Background(), validSignupInput())

	assert.False(t, state.Success)
	assert.Equal(t, validators.MsgEmailTaken, state.Errors[models.FieldEmail])
}

func TestSignup_StoresDigestNotPassword(t *testing.T) {
	var stored models.User
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	in := validSignupInput()
	_, state := svc.Signup(context.Background(), in)

	require.True(t, state.Success)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, in.Password, stored.PasswordHash)
}

func TestSignup_UnexpectedStorageError(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, errors.New("connection lost")
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Signup(context.Background(), validSignupInput())

	assert.False(t, state.Success)
	assert.Equal(t, msgSystemError, state.Message)
	assert.NotContains(t, state.Message, "connection lost")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hasher := crypto.NewHMACHasher("test-key")
	digest, err := hasher.Hash("abc1234567")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, Username: "johnny", PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, state := svc.Login(context.Background(), validators.LoginInput{
		Email:    "john@zod.com",
		Password: "abc1234567",
	})

	require.True(t, state.Success)
	assert.Equal(t, int64(1), user.UserID)
}

// Absence and mismatch must answer with byte-identical states, so a probe
// cannot learn which emails have accounts.
func TestLogin_MissingUserAndWrongPasswordIndistinguishable(t *testing.T) {
	hasher := crypto.NewHMACHasher("test-key")
	digest, err := hasher.Hash("the-real-password1")
	require.NoError(t, err)

	missing := &mockUserRepository{}
	wrongPassword := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: digest}, nil
		},
	}

	input := validators.LoginInput{Email: "john@zod.com", Password: "wrong-guess1"}

	_, stateMissing := newTestAuthService(missing).Login(context.Background(), input)
	_, stateWrong := newTestAuthService(wrongPassword).Login(context.Background(), input)

	assert.Equal(t, stateMissing, stateWrong)
	assert.Equal(t, validators.MsgInvalidCredentials, stateMissing.Message)
}

func TestLogin_ShortPasswordAccepted(t *testing.T) {
	hasher := crypto.NewHMACHasher("test-key")
	digest, err := hasher.Hash("short")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: digest}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Login(context.Background(), validators.LoginInput{
		Email:    "john@zod.com",
		Password: "short",
	})

	assert.True(t, state.Success, "login must not apply signup complexity rules")
}

func TestLogin_UnexpectedStorageError(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("connection lost")
		},
	}
	svc := newTestAuthService(repo)

	_, state := svc.Login(context.Background(), validators.LoginInput{
		Email:    "john@zod.com",
		Password: "whatever1x",
	})

	assert.False(t, state.Success)
	assert.Equal(t, msgSystemError, state.Message)
}

// ─────────────────────────────────────────────
// GetProfile
// ─────────────────────────────────────────────

func TestGetProfile_Success(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Username: "johnny"}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.GetProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "johnny", user.Username)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.GetProfile(context.Background(), 404)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
