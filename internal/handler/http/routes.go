package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me", h.me)

		r.Get("/api/files/", h.listFiles)
		r.Get("/api/files/{name}", h.downloadFile)
		r.Put("/api/files/{name}", h.uploadFile)
		r.Delete("/api/files/{name}", h.deleteFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
