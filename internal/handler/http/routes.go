package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// WebhookPathPrefix is joined with the bot token to form the URL registered
// through setWebhook.
const WebhookPathPrefix = "/webhook/"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/health", h.health)
	router.Route("/api", func(r chi.Router) {
		r.Get("/status", h.status)
		r.Get("/version", h.getServerVersion)
	})

	if h.updates != nil {
		router.Post(WebhookPathPrefix+"{token}", h.webhook)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
