// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-feed-board/internal/utils"
	"github.com/MKhiriev/go-feed-board/models"
)

// routeGuard decodes the session cookie once per request and enforces the
// access rules of every route class before the handler runs.
//
// Page routes: a protected page visited without a valid session redirects to
// the login page with the original path preserved in the callbackUrl query
// parameter; an auth page visited with a valid session redirects home. API
// and action routes answer 401 JSON instead of redirecting, except the
// handful of endpoints that must work logged-out (session probe, logout,
// signup and login submissions, version).
//
// Only a cookie that passes signature verification counts as a session; a
// present but tampered cookie is treated as logged out. The middleware is
// read-only: it never writes or clears the cookie itself.
//
// The decoded session is stored in the request context under
// [utils.SessionCtxKey], and the user ID additionally under
// [utils.UserIDCtxKey], so downstream handlers never re-parse the cookie.
func (h *Handler) routeGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionData := h.sessions.Get(r)

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sessionData)
		if sessionData.IsLoggedIn {
			ctx = context.WithValue(ctx, utils.UserIDCtxKey, sessionData.UserID)
		}
		r = r.WithContext(ctx)

		path := r.URL.Path
		switch {
		case isOpenEndpoint(path):
			next.ServeHTTP(w, r)

		case strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/actions/"):
			if !sessionData.IsLoggedIn {
				utils.WriteJSON(w, models.APIError{Error: "Unauthorized"}, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)

		case isAuthPage(path):
			if sessionData.IsLoggedIn {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)

		case isProtectedPage(path):
			if !sessionData.IsLoggedIn {
				http.Redirect(w, r, "/log-in?callbackUrl="+url.QueryEscape(path), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)

		default:
			next.ServeHTTP(w, r)
		}
	})
}

// isOpenEndpoint reports whether the path must remain reachable without a
// session: the session probe, logout, the signup/login submissions, and the
// version endpoint.
func isOpenEndpoint(path string) bool {
	switch path {
	case "/api/auth/session", "/api/auth/logout", "/api/version",
		"/actions/signup", "/actions/login":
		return true
	}
	return false
}

func isAuthPage(path string) bool {
	return path == "/log-in" || path == "/create-account"
}

func isProtectedPage(path string) bool {
	return path == "/" || path == "/profile" ||
		path == "/tweets" || strings.HasPrefix(path, "/tweets/")
}
