// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the cookie-backed session lifecycle.
//
// There is no server-side session table: the cookie is the session of
// record. The payload is an HMAC-SHA256 signed JWT, so a tampered cookie
// fails signature verification and degrades to "logged out" instead of
// being trusted. Revocation is only possible by rotating the signing key or
// clearing the cookie client-side.
package session

import (
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-feed-board/internal/config"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
)

// CookieName is the single cookie that carries the encoded session.
const CookieName = "feed_board_session"

// Manager creates, reads, and destroys the session cookie. It mediates all
// reads of "who is the caller"; handlers never touch the cookie directly.
type Manager interface {
	// Set serializes data into a signed cookie and writes it to w. The
	// previous session, if any, is overwritten by the single cookie write.
	Set(w http.ResponseWriter, data models.SessionData) error

	// Get reads the session cookie from r. On absence, bad signature,
	// expiry, or any parse failure it returns a logged-out session —
	// never an error, so a corrupt cookie cannot break navigation.
	Get(r *http.Request) models.SessionData

	// Clear rewrites the cookie with an immediate expiry, forcing the
	// browser to drop it.
	Clear(w http.ResponseWriter)
}

// sessionClaims is the JWT claim set stored in the cookie. The user ID
// travels in the registered "sub" claim; username and email are custom
// claims so GET /api/auth/session can answer without a store lookup.
type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

type manager struct {
	signKey  string
	issuer   string
	duration time.Duration
	secure   bool
	logger   *logger.Logger
}

// NewManager constructs a [Manager] with the signing key, issuer, lifetime,
// and cookie security settings from cfg.
func NewManager(cfg config.App, log *logger.Logger) Manager {
	return &manager{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		secure:   cfg.SecureCookies,
		logger:   log,
	}
}

// Set implements [Manager].
func (m *manager) Set(w http.ResponseWriter, data models.SessionData) error {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(data.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
		},
		Username: data.Username,
		Email:    data.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.signKey))
	if err != nil {
		m.logger.Err(err).Msg("error signing session cookie")
		return err
	}

	http.SetCookie(w, m.cookie(signed, int(m.duration.Seconds())))
	return nil
}

// Get implements [Manager].
func (m *manager) Get(r *http.Request) models.SessionData {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return models.SessionData{}
	}

	var claims sessionClaims
	_, err = jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		return []byte(m.signKey), nil
	}, jwt.WithIssuer(m.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		// a corrupt or expired cookie degrades to logged-out
		m.logger.Debug().Err(err).Msg("session cookie rejected")
		return models.SessionData{}
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.SessionData{}
	}

	return models.SessionData{
		IsLoggedIn: true,
		UserID:     userID,
		Username:   claims.Username,
		Email:      claims.Email,
	}
}

// Clear implements [Manager].
func (m *manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie("", -1))
}

func (m *manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
