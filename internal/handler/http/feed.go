// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/internal/utils"
	"github.com/MKhiriev/go-feed-board/models"
)

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Warn().Str("page", raw).Msg("invalid page number requested")
			utils.WriteJSON(w, models.APIError{Error: "Invalid page number"}, http.StatusBadRequest)
			return
		}
		page = parsed
	}

	feed, err := h.services.FeedService.ListTweets(ctx, page)
	if err != nil {
		log.Err(err).Int("page", page).Msg("unexpected error occurred during feed listing")
		utils.WriteJSON(w, models.APIError{Error: msgSystemError}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, feed, http.StatusOK)
}

func (h *Handler) tweetDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tweetID, err := tweetIDParam(r)
	if err != nil {
		utils.WriteJSON(w, models.APIError{Error: "Tweet not found"}, http.StatusNotFound)
		return
	}

	viewerID, _ := utils.GetUserIDFromContext(ctx)

	detail, err := h.services.FeedService.GetTweet(ctx, viewerID, tweetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTweetNotFound):
			utils.WriteJSON(w, models.APIError{Error: "Tweet not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("tweetID", tweetID).Msg("unexpected error occurred during tweet lookup")
			utils.WriteJSON(w, models.APIError{Error: msgSystemError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) createTweet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data passed to tweet action")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	author, ok := authorFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.APIError{Error: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	_, state := h.services.FeedService.CreateTweet(ctx, author, r.PostFormValue(models.FieldTweet))

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) toggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.APIError{Error: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	tweetID, err := tweetIDParam(r)
	if err != nil {
		log.Warn().Str("tweetID", chi.URLParam(r, "tweetID")).Msg("invalid tweet id in like action")
		utils.WriteJSON(w, models.LikeState{Error: "tweet not found"}, http.StatusOK)
		return
	}

	state := h.services.FeedService.ToggleLike(ctx, userID, tweetID)

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) postResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data passed to response action")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	author, ok := authorFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.APIError{Error: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	tweetID, err := tweetIDParam(r)
	if err != nil {
		state := models.FormState{Message: "tweet not found"}
		utils.WriteJSON(w, state, http.StatusOK)
		return
	}

	_, state := h.services.FeedService.CreateResponse(ctx, author, tweetID, r.PostFormValue(models.FieldText))

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func tweetIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "tweetID"), 10, 64)
}

// authorFromContext builds the author identity of a write action from the
// guard-decoded session.
func authorFromContext(ctx context.Context) (models.Author, bool) {
	sessionData, ok := utils.GetSessionFromContext(ctx)
	if !ok || !sessionData.IsLoggedIn {
		return models.Author{}, false
	}
	return models.Author{UserID: sessionData.UserID, Username: sessionData.Username}, true
}
