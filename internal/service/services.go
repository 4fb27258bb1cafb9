package service

import (
	"github.com/MKhiriev/go-feed-board/internal/config"
	"github.com/MKhiriev/go-feed-board/internal/crypto"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
	"github.com/MKhiriev/go-feed-board/internal/validators"
)

type Services struct {
	AuthService    AuthService
	FeedService    FeedService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	credentialValidator := validators.NewCredentialValidator(cfg.App.AllowedEmailDomain)
	feedValidator := validators.NewFeedValidator()
	hasher := crypto.NewHMACHasher(cfg.App.PasswordHashKey)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, credentialValidator, hasher, logger),
		FeedService:    NewFeedService(storages, feedValidator, logger),
		AppInfoService: appInfoService,
	}, nil
}
