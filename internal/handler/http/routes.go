package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/api/version", h.getVersion)

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	// backend routes, one call at a time
	router.Group(func(r chi.Router) {
		r.Use(h.serialize)

		r.Post("/api/init", h.initialize)

		r.Get("/api/session", h.getSession)
		r.Post("/api/session", h.signIn)
		r.Delete("/api/session", h.signOut)

		r.Post("/api/feeds/{kind}/reset", h.resetFeed)
		r.Get("/api/timeline", h.timeline)
		r.Get("/api/search", h.search)

		r.Get("/api/users/me", h.myProfile)
		r.Get("/api/users/{did}", h.userProfile)
		r.Get("/api/users/{did}/posts", h.userPosts)

		r.Get("/api/posts", h.getPost)
		r.Post("/api/posts", h.createPost)
		r.Get("/api/replies", h.replies)

		r.Post("/api/follows", h.follow)
		r.Delete("/api/follows", h.unfollow)

		r.Post("/api/likes", h.like)
		r.Delete("/api/likes", h.unlike)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(MethodNotAllowed(router))

	return router
}
