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

	router.Get("/api/version", h.getVersion)
	router.Get("/api/health", h.getHealth)
	router.Post("/api/authorize", h.authorize)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
