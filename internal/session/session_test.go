package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-feed-board/internal/config"
	"github.com/MKhiriev/go-feed-board/internal/logger"
	"github.com/MKhiriev/go-feed-board/models"
)

func newTestManager(t *testing.T) Manager {
	t.Helper()
	return NewManager(config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "go-feed-board-test",
		SessionDuration: time.Hour,
	}, logger.Nop())
}

// requestWithCookies replays the cookies a recorder wrote onto a fresh
// request, imitating the browser's cookie jar within one round trip.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSetGet_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	data := models.SessionData{
		IsLoggedIn: true,
		UserID:     42,
		Username:   "abcde",
		Email:      "a@zod.com",
	}

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, data))

	got := m.Get(requestWithCookies(t, rec))
	assert.Equal(t, data, got)
}

func TestSet_CookieAttributes(t *testing.T) {
	m := NewManager(config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "go-feed-board-test",
		SessionDuration: 7 * 24 * time.Hour,
		SecureCookies:   true,
	}, logger.Nop())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, models.SessionData{IsLoggedIn: true, UserID: 1}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	assert.Equal(t, CookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)
}

func TestGet_NoCookie(t *testing.T) {
	m := newTestManager(t)

	got := m.Get(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, got.IsLoggedIn)
	assert.Zero(t, got.UserID)
}

func TestGet_GarbageCookie(t *testing.T) {
	m := newTestManager(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-token"})

	assert.False(t, m.Get(req).IsLoggedIn)
}

func TestGet_TamperedCookie(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, models.SessionData{IsLoggedIn: true, UserID: 7}))

	cookie := rec.Result().Cookies()[0]
	cookie.Value += "x" // break the signature

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	assert.False(t, m.Get(req).IsLoggedIn)
}

func TestGet_WrongSignKey(t *testing.T) {
	issuing := newTestManager(t)
	verifying := NewManager(config.App{
		SessionSignKey:  "another-key",
		SessionIssuer:   "go-feed-board-test",
		SessionDuration: time.Hour,
	}, logger.Nop())

	rec := httptest.NewRecorder()
	require.NoError(t, issuing.Set(rec, models.SessionData{IsLoggedIn: true, UserID: 7}))

	assert.False(t, verifying.Get(requestWithCookies(t, rec)).IsLoggedIn)
}

func TestGet_TokenSignedWithEmptyKeyIsRejected(t *testing.T) {
	// a manager with an empty key signs verifiable tokens, which is exactly
	// why config.ValidateServerSecrets blocks server startup without a key;
	// a properly keyed manager must reject such a token
	forging := NewManager(config.App{
		SessionIssuer:   "go-feed-board-test",
		SessionDuration: time.Hour,
	}, logger.Nop())

	rec := httptest.NewRecorder()
	require.NoError(t, forging.Set(rec, models.SessionData{IsLoggedIn: true, UserID: 42}))

	m := newTestManager(t)
	got := m.Get(requestWithCookies(t, rec))
	assert.False(t, got.IsLoggedIn)
	assert.Zero(t, got.UserID)
}

func TestGet_ExpiredCookie(t *testing.T) {
	m := NewManager(config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "go-feed-board-test",
		SessionDuration: -time.Minute,
	}, logger.Nop())

	rec := httptest.NewRecorder()
	require.NoError(t, m.Set(rec, models.SessionData{IsLoggedIn: true, UserID: 7}))

	assert.False(t, m.Get(requestWithCookies(t, rec)).IsLoggedIn)
}

func TestClear_ForcesExpiry(t *testing.T) {
	m := newTestManager(t)

	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)

	got := m.Get(requestWithCookies(t, rec))
	assert.False(t, got.IsLoggedIn)
}
