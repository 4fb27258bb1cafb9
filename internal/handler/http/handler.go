// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the feed
// board. Cross-cutting concerns such as the session route guard, request
// tracing, and access logging are handled in this package before requests
// are delegated to the service layer. Form actions answer with HTTP 200 and
// a JSON form state even when the submission is rejected; the status code
// reports transport health, the payload reports the outcome.
package http

import (
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/internal/session"
)

type Handler struct {
	services *service.Services
	sessions session.Manager

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions session.Manager, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		logger:   logger,
	}
}
