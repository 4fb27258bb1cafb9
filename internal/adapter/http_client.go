package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-feed-board/internal/session"
	"github.com/MKhiriev/go-feed-board/models"
	"github.com/go-resty/resty/v2"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu     sync.RWMutex
	cookie *http.Cookie
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	// Redirects are part of the protocol here (logout and the route guard
	// answer with 303), so the adapter inspects them instead of following.
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetSessionCookie(cookie *http.Cookie) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cookie = cookie
}

func (h *httpServerAdapter) SessionCookie() *http.Cookie {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cookie
}

// authedRequest returns a request with the held session cookie attached,
// when there is one.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if cookie := h.SessionCookie(); cookie != nil {
		req.SetCookie(cookie)
	}
	return req
}

// captureSessionCookie stores the session cookie from a signup or login
// response. Responses of failed submissions carry no cookie; that is not an
// error.
func (h *httpServerAdapter) captureSessionCookie(resp *resty.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == session.CookieName && cookie.Value != "" {
			h.SetSessionCookie(cookie)
			return
		}
	}
}

func (h *httpServerAdapter) Signup(ctx context.Context, email, username, password, bio string) (models.FormState, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			models.FieldEmail:    email,
			models.FieldUsername: username,
			models.FieldPassword: password,
			models.FieldBio:      bio,
		}).
		Post("/actions/signup")
	if err != nil {
		return models.FormState{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormState{}, err
	}

	var state models.FormState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.FormState{}, fmt.Errorf("signup decode response: %w", err)
	}

	if state.Success {
		h.captureSessionCookie(resp)
	}

	return state, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) (models.FormState, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			models.FieldEmail:    email,
			models.FieldPassword: password,
		}).
		Post("/actions/login")
	if err != nil {
		return models.FormState{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormState{}, err
	}

	var state models.FormState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.FormState{}, fmt.Errorf("login decode response: %w", err)
	}

	if state.Success {
		h.captureSessionCookie(resp)
	}

	return state, nil
}

func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionData, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/session")
	if err != nil {
		return models.SessionData{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionData{}, err
	}

	var data models.SessionData
	if err = json.Unmarshal(resp.Body(), &data); err != nil {
		return models.SessionData{}, fmt.Errorf("session decode response: %w", err)
	}

	return data, nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	// logout answers with a redirect to the login page
	if resp.StatusCode() != http.StatusSeeOther {
		if err = mapHTTPError(resp); err != nil {
			return err
		}
	}

	h.SetSessionCookie(nil)
	return nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var profile models.ProfileResponse
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.User{}, fmt.Errorf("profile decode response: %w", err)
	}

	return profile.User, nil
}

func (h *httpServerAdapter) Feed(ctx context.Context, page int) (models.FeedResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/api/tweets")
	if err != nil {
		return models.FeedResponse{}, fmt.Errorf("feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FeedResponse{}, err
	}

	var feed models.FeedResponse
	if err = json.Unmarshal(resp.Body(), &feed); err != nil {
		return models.FeedResponse{}, fmt.Errorf("feed decode response: %w", err)
	}

	return feed, nil
}

func (h *httpServerAdapter) Tweet(ctx context.Context, tweetID int64) (models.TweetDetailResponse, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/tweets/%d", tweetID))
	if err != nil {
		return models.TweetDetailResponse{}, fmt.Errorf("tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TweetDetailResponse{}, err
	}

	var detail models.TweetDetailResponse
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.TweetDetailResponse{}, fmt.Errorf("tweet decode response: %w", err)
	}

	return detail, nil
}

func (h *httpServerAdapter) CreateTweet(ctx context.Context, text string) (models.FormState, error) {
	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{models.FieldTweet: text}).
		Post("/actions/tweets")
	if err != nil {
		return models.FormState{}, fmt.Errorf("create tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormState{}, err
	}

	var state models.FormState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.FormState{}, fmt.Errorf("create tweet decode response: %w", err)
	}

	return state, nil
}

func (h *httpServerAdapter) ToggleLike(ctx context.Context, tweetID int64) (models.LikeState, error) {
	resp, err := h.authedRequest(ctx).
		Post(fmt.Sprintf("/actions/tweets/%d/like", tweetID))
	if err != nil {
		return models.LikeState{}, fmt.Errorf("toggle like request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LikeState{}, err
	}

	var state models.LikeState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.LikeState{}, fmt.Errorf("toggle like decode response: %w", err)
	}

	return state, nil
}

func (h *httpServerAdapter) PostResponse(ctx context.Context, tweetID int64, text string) (models.FormState, error) {
	resp, err := h.authedRequest(ctx).
		SetFormData(map[string]string{models.FieldText: text}).
		Post(fmt.Sprintf("/actions/tweets/%d/responses", tweetID))
	if err != nil {
		return models.FormState{}, fmt.Errorf("post response request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormState{}, err
	}

	var state models.FormState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.FormState{}, fmt.Errorf("post response decode response: %w", err)
	}

	return state, nil
}
