package service

import (
	"github.com/MKhiriev/go-feed-board/internal/adapter"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	FeedService ClientFeedService
	RefreshJob  ClientRefreshJob
}

func NewClientServices(cache store.FeedCache, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter, logger)
	feedSvc := NewClientFeedService(serverAdapter, cache, logger)

	return &ClientServices{
		AuthService: authSvc,
		FeedService: feedSvc,
		RefreshJob:  NewClientRefreshJob(feedSvc),
	}
}
