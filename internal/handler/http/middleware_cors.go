package http

import (
	"net/http"
	"slices"
)

// withCORS enforces the origin allow-list. Requests without an Origin
// header (same-origin, curl) pass through untouched. Disallowed origins
// are rejected with 403 before the session and auth stages run, so no
// cookie is ever issued to them. Preflight requests are answered locally
// with 204.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !slices.Contains(h.cfg.Server.CORSOrigins, origin) {
			writeError(w, r, ErrOriginNotAllowed)
			return
		}

		header := w.Header()
		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Expose-Headers", "Set-Cookie, Authorization, X-Trace-ID")
		header.Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Trace-ID")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
