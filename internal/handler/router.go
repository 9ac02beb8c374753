package handler

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/techwriters/workshop-api/internal/config"
	"github.com/techwriters/workshop-api/internal/middleware"
	"github.com/techwriters/workshop-api/internal/store"
)

// NewRouter configures the chi router with all routes and middleware.
// The store must be opened before the router starts serving.
func NewRouter(cfg *config.Config, st *store.Store, logger *slog.Logger) *chi.Mux {
	h := New()
	users := NewUserHandler(st, logger)
	posts := NewPostHandler(st, logger)
	comments := NewCommentHandler(st, logger)
	oauth := NewOAuthHandler(st, logger, cfg.OAuthClientID, cfg.OAuthClientSecret)
	documents := NewDocumentHandler(logger)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	requireToken := middleware.Auth(middleware.AuthConfig{
		Logger: logger,
		Store:  st,
	})

	r.Get("/", h.Root)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", users.List)
		r.Post("/", users.Create)
		r.With(requireToken).Get("/admin", users.ListAdmins)
		r.Get("/{userID}", users.Get)
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Post("/", posts.Create)
		r.Get("/{postID}", posts.Get)
		r.Put("/{postID}", posts.Replace)
		r.Patch("/{postID}", posts.Update)
		r.Delete("/{postID}", posts.Delete)
		r.Get("/{postID}/comments", comments.ListByPost)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", comments.List)
		r.Post("/", comments.Create)
		r.Get("/{commentID}", comments.Get)
		r.Put("/{commentID}", comments.Replace)
		r.Patch("/{commentID}", comments.Update)
		r.Delete("/{commentID}", comments.Delete)
	})

	r.Post("/oauth/token", oauth.Token)

	// API v1 routes (require a bearer token)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireToken)

		r.Get("/users", users.ListAll)
		r.Post("/documents", documents.Create)
		r.Get("/oauth/token/info", oauth.TokenInfo)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
