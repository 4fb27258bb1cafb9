package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/internal/service"
	"github.com/MKhiriev/go-feed-board/internal/utils"
	"github.com/MKhiriev/go-feed-board/internal/validators"
	"github.com/MKhiriev/go-feed-board/models"
)

// msgSystemError is the only failure text a client ever sees for an
// unexpected server-side error; detail stays in the logs under the trace ID.
const msgSystemError = "something went wrong, please try again"

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data passed to signup")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	input := validators.SignupInput{
		Email:    r.PostFormValue(models.FieldEmail),
		Username: r.PostFormValue(models.FieldUsername),
		Password: r.PostFormValue(models.FieldPassword),
		Bio:      r.PostFormValue(models.FieldBio),
	}

	user, state := h.services.AuthService.Signup(ctx, input)
	if state.Success {
		if err := h.sessions.Set(w, sessionFor(user)); err != nil {
			log.Err(err).Int64("userID", user.UserID).Msg("session set failed after signup")
			state = models.FormState{Message: msgSystemError, Values: state.Values}
		}
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data passed to login")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	input := validators.LoginInput{
		Email:    r.PostFormValue(models.FieldEmail),
		Password: r.PostFormValue(models.FieldPassword),
	}

	user, state := h.services.AuthService.Login(ctx, input)
	if state.Success {
		if err := h.sessions.Set(w, sessionFor(user)); err != nil {
			log.Err(err).Int64("userID", user.UserID).Msg("session set failed after login")
			state = models.FormState{Message: msgSystemError, Values: state.Values}
		}
	}

	utils.WriteJSON(w, state, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/log-in", http.StatusSeeOther)
}

// sessionInfo answers the session probe. It never requires authentication:
// a logged-out caller receives {"isLoggedIn": false}.
func (h *Handler) sessionInfo(w http.ResponseWriter, r *http.Request) {
	sessionData, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		sessionData = h.sessions.Get(r)
	}

	utils.WriteJSON(w, sessionData, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSON(w, models.APIError{Error: "Unauthorized"}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			log.Err(err).Int64("userID", userID).Msg("profile requested for missing user")
			utils.WriteJSON(w, models.APIError{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("userID", userID).Msg("unexpected error occurred during profile lookup")
			utils.WriteJSON(w, models.APIError{Error: msgSystemError}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user}, http.StatusOK)
}

// sessionFor maps a freshly authenticated user onto the cookie payload.
func sessionFor(user models.User) models.SessionData {
	return models.SessionData{
		IsLoggedIn: true,
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
	}
}
