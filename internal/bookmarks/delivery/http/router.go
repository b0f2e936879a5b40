package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(rateLimiter.Middleware)

	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)

	r.Route("/api/links", func(r chi.Router) {
		r.Get("/", handler.ListLinks)
		r.Post("/", handler.CreateLink)
		r.Get("/favorites", handler.ListFavoriteLinks)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetLink)
			r.Patch("/", handler.UpdateLink)
			r.Delete("/", handler.DeleteLink)
			r.Patch("/favorite", handler.ToggleFavorite)
		})
	})

	return r
}
