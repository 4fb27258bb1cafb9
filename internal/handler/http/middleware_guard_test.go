// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-feed-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedInManager always decodes a valid session from the cookie.
func loggedInManager() *mockSessionManager {
	return &mockSessionManager{
		getFn: func(_ *http.Request) models.SessionData { return loggedInAlice },
	}
}

// guardRouter builds the full router so requests travel the real middleware
// chain.
func guardRouter(t *testing.T, sessions *mockSessionManager) http.Handler {
	t.Helper()
	feed := &mockFeedService{
		listTweetsFn: func(_ context.Context, page int) (models.FeedResponse, error) {
			return models.FeedResponse{Pagination: models.Pagination{Page: page}}, nil
		},
	}
	return newTestHandler(t, nil, feed, sessions).Init()
}

// TestRouteGuard_ProtectedPageRedirectsToLogin verifies the redirect and the
// preserved callback path for an anonymous visit.
func TestRouteGuard_ProtectedPageRedirectsToLogin(t *testing.T) {
	router := guardRouter(t, &mockSessionManager{})

	tests := []struct {
		path     string
		location string
	}{
		{path: "/", location: "/log-in?callbackUrl=%2F"},
		{path: "/profile", location: "/log-in?callbackUrl=%2Fprofile"},
		{path: "/tweets", location: "/log-in?callbackUrl=%2Ftweets"},
		{path: "/tweets/5", location: "/log-in?callbackUrl=%2Ftweets%2F5"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

// TestRouteGuard_AuthPageRedirectsHome verifies that a logged-in visitor
// cannot reach the login or signup pages.
func TestRouteGuard_AuthPageRedirectsHome(t *testing.T) {
	router := guardRouter(t, loggedInManager())

	for _, path := range []string{"/log-in", "/create-account"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}

// TestRouteGuard_AuthPageServedWhenLoggedOut verifies that anonymous
// visitors see the auth pages.
func TestRouteGuard_AuthPageServedWhenLoggedOut(t *testing.T) {
	router := guardRouter(t, &mockSessionManager{})

	for _, path := range []string{"/log-in", "/create-account"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, "path %q", path)
	}
}

// TestRouteGuard_ProtectedAPIAnswers401 verifies the JSON rejection for API
// calls without a session.
func TestRouteGuard_ProtectedAPIAnswers401(t *testing.T) {
	router := guardRouter(t, &mockSessionManager{})

	for _, path := range []string{"/api/tweets", "/api/tweets/5", "/api/profile"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

// TestRouteGuard_OpenEndpointsNeedNoSession verifies that the session probe
// and the version endpoint stay reachable when logged out.
func TestRouteGuard_OpenEndpointsNeedNoSession(t *testing.T) {
	router := guardRouter(t, &mockSessionManager{})

	for _, path := range []string{"/api/auth/session", "/api/version"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusOK, rec.Code, "path %q", path)
	}
}

// TestRouteGuard_ProtectedAPIPassesWithSession verifies that a valid cookie
// lets the feed request through with the viewer identity attached.
func TestRouteGuard_ProtectedAPIPassesWithSession(t *testing.T) {
	router := guardRouter(t, loggedInManager())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tweets", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestRouteGuard_TamperedCookieIsLoggedOut verifies the trust boundary: a
// cookie the manager rejects counts as no session at all.
func TestRouteGuard_TamperedCookieIsLoggedOut(t *testing.T) {
	sessions := &mockSessionManager{
		getFn: func(_ *http.Request) models.SessionData { return models.SessionData{} },
	}
	router := guardRouter(t, sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.AddCookie(&http.Cookie{Name: "feed_board_session", Value: "tampered"})
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
