package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-feed-board/internal/adapter"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Signup(ctx context.Context, email, username, password, bio string) (models.FormState, error) {
	state, err := a.adapter.Signup(ctx, email, username, password, bio)
	if err != nil {
		return models.FormState{}, fmt.Errorf("signup on server: %w", err)
	}

	return state, nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.FormState, error) {
	state, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.FormState{}, fmt.Errorf("login on server: %w", err)
	}

	return state, nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.SessionData, error) {
	data, err := a.adapter.Session(ctx)
	if err != nil {
		return models.SessionData{}, fmt.Errorf("session lookup: %w", err)
	}

	return data, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.adapter.Logout(ctx); err != nil {
		return fmt.Errorf("logout on server: %w", err)
	}

	return nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.User, error) {
	user, err := a.adapter.Profile(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, mapAdapterError(err)
	}

	return user, nil
}
