package http

import (
	"net/http"

	"github.com/web-ghoul/Brainstorming-Server/internal/logger"
	"github.com/web-ghoul/Brainstorming-Server/internal/utils"
)

// withRateLimit budgets requests per client over a fixed window. Clients
// are keyed by the first X-Forwarded-For entry, falling back to the
// connection address. A counter backend failure lets the request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := utils.ClientAddress(r)

		allowed, err := h.limiter.Allow(r.Context(), key)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("rate limiter unavailable")
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			writeError(w, r, ErrTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
