package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.routeGuard)

	// pages
	router.Get("/", h.feedPage)
	router.Get("/tweets", h.feedPage)
	router.Get("/tweets/{tweetID}", h.tweetPage)
	router.Get("/profile", h.profilePage)
	router.Get("/log-in", h.loginPage)
	router.Get("/create-account", h.signupPage)

	// read API
	router.Get("/api/auth/session", h.sessionInfo)
	router.Get("/api/auth/logout", h.logout)
	router.Get("/api/profile", h.profile)
	router.Get("/api/tweets", h.feed)
	router.Get("/api/tweets/{tweetID}", h.tweetDetail)
	router.Get("/api/version", h.getServerVersion)

	// form actions
	router.Post("/actions/signup", h.signup)
	router.Post("/actions/login", h.login)
	router.Post("/actions/tweets", h.createTweet)
	router.Post("/actions/tweets/{tweetID}/like", h.toggleLike)
	router.Post("/actions/tweets/{tweetID}/responses", h.postResponse)

	return router
}
