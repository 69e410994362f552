package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestLog)

	router.Get("/api/ping", h.ping)

	router.Route("/api/domains", func(r chi.Router) {
		r.Get("/{domain}", h.getSnapshot)
		r.Put("/{domain}", h.putSnapshot)
	})

	return router
}
