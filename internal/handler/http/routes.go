package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the router with the fixed pipeline order. Gating stages
// answer locally; everything else flows to the shared error mapper.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withRecover,
		h.withTimeout,
		h.withTraceID,
		h.withLogging,
		h.withRateLimit,
		h.withBodyGate,
		withGZip,
		h.withSecurityHeaders,
		h.withSanitize,
		h.withCORS,
		h.withSession,
	)

	router.Get("/", h.banner)
	router.Get("/api-docs", h.docsUI)
	router.Get("/api-docs/openapi.json", h.openAPI)

	router.Post("/api", h.uploadBatch)
	router.Post("/uploadImage", h.uploadSingle)
	router.Post("/uploadMultipleImages", h.uploadBatch)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/{provider}", h.oauthRedirect)
		r.Get("/api/auth/{provider}/callback", h.oauthCallback)

		r.Get("/api/ideas", h.listIdeas)
		r.Get("/api/ideas/{id}", h.getIdea)
	})

	// routes that require an authenticated identity
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/ideas", h.createIdea)
		r.Put("/api/ideas/{id}", h.updateIdea)
		r.Delete("/api/ideas/{id}", h.deleteIdea)

		r.Get("/api/users/me", h.me)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, ErrMethodNotAllowed)
	})

	return router
}
